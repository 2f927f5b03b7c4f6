// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// =============================================================================
// JSON PARSING
// =============================================================================

// ParseJSON parses text as a single JSON document. Duplicate object keys
// keep the last value at the position of the first occurrence.
func ParseJSON(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err != nil {
		return Value{}, jsonError(text, dec, err)
	}

	// Anything but EOF after the top-level value is an error.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Value{}, jsonError(text, dec, err)
		}
		return Value{}, &ParseError{
			Format: JSON,
			Msg:    fmt.Sprintf("unexpected %s after top-level value", describeToken(tok)),
		}
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			arr := Array()
			for dec.More() {
				item, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				arr.Items = append(arr.Items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return arr, nil
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("expected object key, found %s", describeToken(keyTok))
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				obj.set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return obj, nil
		default:
			return Value{}, fmt.Errorf("unexpected %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonError(text string, dec *json.Decoder, err error) error {
	pe := &ParseError{Format: JSON, Msg: err.Error()}

	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		pe.Msg = "unexpected end of JSON input"
	case errors.As(err, &syntaxErr):
		pe.Line, pe.Column = position(text, syntaxErr.Offset)
	default:
		pe.Line, pe.Column = position(text, dec.InputOffset())
	}
	return pe
}

func describeToken(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		return fmt.Sprintf("%q", rune(t))
	case string:
		return fmt.Sprintf("string %q", t)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// =============================================================================
// JSON ENCODING
// =============================================================================

// EncodeJSON renders v as JSON indented by two spaces, without a trailing
// newline. Non-finite numbers are written as null.
func EncodeJSON(v Value) (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, 0, "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeJSONCompact renders v as single-line JSON.
func EncodeJSONCompact(v Value) (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, 0, ""); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeJSON(buf *bytes.Buffer, v Value, depth int, indent string) error {
	newline := func(d int) {
		if indent == "" {
			return
		}
		buf.WriteByte('\n')
		for i := 0; i < d; i++ {
			buf.WriteString(indent)
		}
	}

	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if isJSONNumber(v.Num) {
			buf.WriteString(v.Num)
		} else {
			buf.WriteString("null")
		}
	case KindString:
		writeJSONString(buf, v.Str)
	case KindArray:
		if len(v.Items) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(depth + 1)
			if err := writeJSON(buf, item, depth+1, indent); err != nil {
				return err
			}
		}
		newline(depth)
		buf.WriteByte(']')
	case KindObject:
		if len(v.Fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(depth + 1)
			writeJSONString(buf, f.Key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			if err := writeJSON(buf, f.Value, depth+1, indent); err != nil {
				return err
			}
		}
		newline(depth)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of kind %s", v.Kind)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}
