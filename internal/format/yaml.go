// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// maxYAMLDepth bounds nesting, including nesting reached through aliases.
	maxYAMLDepth = 1000
	// maxYAMLNodes bounds the expanded size of a document so alias bombs
	// fail fast instead of exhausting memory.
	maxYAMLNodes = 1_000_000
)

// =============================================================================
// YAML PARSING
// =============================================================================

// ParseYAML parses text as a single YAML document. An empty or
// comment-only document is null.
func ParseYAML(text string) (Value, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), nil
		}
		return Value{}, yamlError(err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, yamlError(err)
		}
		return Value{}, &ParseError{
			Format: YAML,
			Msg:    "expected a single document in the stream, but found more",
			Line:   extra.Line,
			Column: extra.Column,
		}
	}

	b := &yamlBuilder{}
	return b.value(&doc, 0)
}

func yamlError(err error) error {
	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	return &ParseError{Format: YAML, Msg: msg}
}

type yamlBuilder struct {
	nodes int
}

func (b *yamlBuilder) fail(n *yaml.Node, msg string) error {
	return &ParseError{Format: YAML, Msg: msg, Line: n.Line, Column: n.Column}
}

func (b *yamlBuilder) value(n *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return Value{}, b.fail(n, "document nesting is too deep")
	}
	b.nodes++
	if b.nodes > maxYAMLNodes {
		return Value{}, b.fail(n, "document expands to too many nodes")
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return b.value(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, b.fail(n, "unknown anchor "+n.Value)
		}
		return b.value(n.Alias, depth+1)
	case yaml.ScalarNode:
		return b.scalar(n)
	case yaml.SequenceNode:
		arr := Array()
		for _, item := range n.Content {
			v, err := b.value(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			arr.Items = append(arr.Items, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return b.mapping(n, depth)
	default:
		return Value{}, b.fail(n, fmt.Sprintf("unsupported node kind %d", n.Kind))
	}
}

func (b *yamlBuilder) scalar(n *yaml.Node) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return Value{}, b.fail(n, err.Error())
		}
		return Bool(v), nil
	case "!!int":
		var v any
		if err := n.Decode(&v); err != nil {
			return Value{}, b.fail(n, err.Error())
		}
		switch i := v.(type) {
		case int:
			return Int(int64(i)), nil
		case int64:
			return Int(i), nil
		case uint64:
			return Number(strconv.FormatUint(i, 10)), nil
		case float64:
			return Number(formatFloat(i)), nil
		default:
			return Value{}, b.fail(n, fmt.Sprintf("cannot read %q as an integer", n.Value))
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, b.fail(n, err.Error())
		}
		return Number(formatFloat(f)), nil
	case "!!str", "!!timestamp", "!!binary", "!":
		return String(n.Value), nil
	default:
		return Value{}, b.fail(n, "unknown tag "+tag)
	}
}

// mapping builds an object. Merge keys (<<) contribute fields that explicit
// keys may override; an explicit key appearing twice is an error.
func (b *yamlBuilder) mapping(n *yaml.Node, depth int) (Value, error) {
	obj := Object()
	overridable := make(map[string]bool)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if isMergeKey(keyNode) {
			if err := b.merge(&obj, overridable, valNode, depth); err != nil {
				return Value{}, err
			}
			continue
		}

		key, err := b.key(keyNode, depth)
		if err != nil {
			return Value{}, err
		}
		if obj.index(key) >= 0 && !overridable[key] {
			return Value{}, b.fail(keyNode, "duplicated mapping key")
		}
		val, err := b.value(valNode, depth+1)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, val)
		delete(overridable, key)
	}
	return obj, nil
}

func (b *yamlBuilder) merge(obj *Value, overridable map[string]bool, src *yaml.Node, depth int) error {
	sources := []*yaml.Node{src}
	if resolveAlias(src).Kind == yaml.SequenceNode {
		sources = resolveAlias(src).Content
	}

	for _, s := range sources {
		v, err := b.value(s, depth+1)
		if err != nil {
			return err
		}
		if v.Kind != KindObject {
			return b.fail(s, "cannot merge mappings; the provided source object is unacceptable")
		}
		for _, f := range v.Fields {
			if obj.index(f.Key) >= 0 {
				continue
			}
			obj.set(f.Key, f.Value)
			overridable[f.Key] = true
		}
	}
	return nil
}

// key renders a mapping key as a string. Scalars use their resolved
// representation; collection keys use compact JSON.
func (b *yamlBuilder) key(n *yaml.Node, depth int) (string, error) {
	v, err := b.value(n, depth+1)
	if err != nil {
		return "", err
	}
	switch v.Kind {
	case KindString:
		return v.Str, nil
	case KindNull:
		return "null", nil
	case KindBool:
		return strconv.FormatBool(v.Bool), nil
	case KindNumber:
		return v.Num, nil
	default:
		return EncodeJSONCompact(v)
	}
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == "!!merge"
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// =============================================================================
// YAML ENCODING
// =============================================================================

// EncodeYAML renders v as a YAML document indented by two spaces. The
// result ends with a newline.
func EncodeYAML(v Value) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toYAMLNode(v)); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}

func toYAMLNode(v Value) *yaml.Node {
	switch v.Kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}
	case KindNumber:
		// Untagged so the emitter writes it plain and readers resolve it
		// back to a number.
		return &yaml.Node{Kind: yaml.ScalarNode, Value: canonicalNumber(v.Num)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(v.Items) == 0 {
			n.Style = yaml.FlowStyle
		}
		for _, item := range v.Items {
			n.Content = append(n.Content, toYAMLNode(item))
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(v.Fields) == 0 {
			n.Style = yaml.FlowStyle
		}
		for _, f := range v.Fields {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
				toYAMLNode(f.Value),
			)
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
