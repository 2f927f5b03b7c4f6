// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolkit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/fmtkit/internal/clipboard"
	"github.com/jeranaias/fmtkit/internal/format"
)

// Copier writes text to a clipboard. *clipboard.Copier implements it.
type Copier interface {
	Copy(ctx context.Context, text string) clipboard.Outcome
}

// Options configures a Controller.
type Options struct {
	// InitialTab is the tab active at construction. Defaults to the converter.
	InitialTab TabID
	// Format is the converter's initial declared input format.
	Format format.Format
	// Notifier receives user-facing messages. Defaults to Discard.
	Notifier Notifier
	// Clipboard performs copies. Defaults to the system clipboard with the
	// OSC 52 fallback.
	Clipboard Copier
	// Logger receives diagnostics. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Controller implements the tool panels' actions.
type Controller struct {
	tabs     *TabSet
	format   format.Format
	notifier Notifier
	copier   Copier
	log      zerolog.Logger
}

// New returns a Controller.
func New(opts Options) (*Controller, error) {
	initial := opts.InitialTab
	if initial == "" {
		initial = TabConverter
	}
	tabs, err := NewTabSet(initial)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		tabs:     tabs,
		format:   opts.Format,
		notifier: opts.Notifier,
		copier:   opts.Clipboard,
		log:      zerolog.Nop(),
	}
	if c.notifier == nil {
		c.notifier = Discard
	}
	if c.copier == nil {
		c.copier = clipboard.NewCopier(true)
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("component", "toolkit").Logger()
	}
	return c, nil
}

// op returns a logger tagged with a fresh operation id.
func (c *Controller) op(action string) zerolog.Logger {
	return c.log.With().Str("op", uuid.NewString()).Str("action", action).Logger()
}

// =============================================================================
// TABS
// =============================================================================

// Tabs returns the tab set.
func (c *Controller) Tabs() *TabSet {
	return c.tabs
}

// ActiveTab returns the active tab id.
func (c *Controller) ActiveTab() TabID {
	return c.tabs.Active()
}

// SelectTab activates id. Unknown ids are rejected and the selection stays.
func (c *Controller) SelectTab(id TabID) error {
	if err := c.tabs.Select(id); err != nil {
		c.log.Debug().Str("tab", string(id)).Msg("rejected tab selection")
		return err
	}
	c.log.Debug().Str("tab", string(id)).Msg("tab selected")
	return nil
}

// NextTab activates the following tab.
func (c *Controller) NextTab() TabID { return c.tabs.Next() }

// PrevTab activates the preceding tab.
func (c *Controller) PrevTab() TabID { return c.tabs.Prev() }

// =============================================================================
// FORMAT SELECTOR
// =============================================================================

// Format returns the declared input format.
func (c *Controller) Format() format.Format {
	return c.format
}

// SetFormat sets the declared input format.
func (c *Controller) SetFormat(f format.Format) {
	c.format = f
}

// ToggleFormat switches the declared input format and returns it.
func (c *Controller) ToggleFormat() format.Format {
	c.format = c.format.Other()
	return c.format
}

// AutoDetect guesses the format of input and updates the declared format
// when one parser accepts it. Nothing is reported to the user.
func (c *Controller) AutoDetect(input string) format.Detection {
	d := format.Detect(input)
	c.format = d.Apply(c.format)
	return d
}

// =============================================================================
// CONVERT
// =============================================================================

// Conversion is the result of Convert.
type Conversion struct {
	// Output is the converted document, or "Error: <message>" on failure.
	Output string
	Err    error
	// Skipped is true for blank input; the output field must stay as it was.
	Skipped bool
}

// Convert converts input from the declared format to the other one.
func (c *Controller) Convert(input string) Conversion {
	log := c.op("convert")
	from := c.format

	out, err := format.Convert(input, from)
	switch {
	case errors.Is(err, format.ErrEmptyInput):
		c.notifier.Notify(failure(MsgEmptyConvert))
		return Conversion{Err: err, Skipped: true}
	case err != nil:
		log.Debug().Err(err).Str("from", from.String()).Msg("conversion failed")
		c.notifier.Notify(failure(MsgConvertFailed))
		return Conversion{Output: "Error: " + err.Error(), Err: err}
	}

	log.Debug().Str("from", from.String()).Int("bytes", len(out)).Msg("converted")
	c.notifier.Notify(success(MsgConvertOK))
	return Conversion{Output: out}
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// CopyResult is the result of CopyText.
type CopyResult struct {
	// Empty is true when there was nothing to copy; the clipboard was not touched.
	Empty   bool
	Outcome clipboard.Outcome
}

// CopyText writes output to the clipboard without notifying. It may block
// on the system clipboard and is safe to call off the UI goroutine.
func (c *Controller) CopyText(ctx context.Context, output string) CopyResult {
	if format.IsBlank(output) {
		return CopyResult{Empty: true}
	}
	return CopyResult{Outcome: c.copier.Copy(ctx, output)}
}

// ReportCopy turns a CopyResult into a notification and sends it.
func (c *Controller) ReportCopy(res CopyResult) Notification {
	if res.Empty {
		n := failure(MsgNothingToCopy)
		c.notifier.Notify(n)
		return n
	}

	log := c.op("copy")
	out := res.Outcome
	if out.Method == clipboard.MethodFallback {
		ev := log.Warn().AnErr("primary_err", out.PrimaryErr)
		if out.FallbackErr != nil {
			ev = ev.AnErr("fallback_err", out.FallbackErr)
		}
		ev.Msg("system clipboard failed, used fallback")
	} else {
		log.Debug().Msg("copied")
	}

	// Success is reported even when the fallback failed too. This is
	// probably a bug; the log above has the real outcome.
	n := success(MsgCopied)
	c.notifier.Notify(n)
	return n
}

// CopyToClipboard copies output and notifies the user.
func (c *Controller) CopyToClipboard(ctx context.Context, output string) Notification {
	return c.ReportCopy(c.CopyText(ctx, output))
}

// =============================================================================
// VALIDATE
// =============================================================================

// Validate checks input as f and returns the block for the result area.
// Blank input yields a placeholder and no notification.
func (c *Controller) Validate(input string, f format.Format) ResultBlock {
	log := c.op("validate")

	summary, err := format.Validate(input, f)
	switch {
	case errors.Is(err, format.ErrEmptyInput):
		return placeholderBlock(f)
	case err != nil:
		log.Debug().Err(err).Str("format", f.String()).Msg("invalid document")
		c.notifier.Notify(failure(fmt.Sprintf(msgInvalidFmt, f.Label())))
		return invalidBlock(f, err)
	}

	log.Debug().Str("format", f.String()).Str("type", summary.Type).Msg("valid document")
	c.notifier.Notify(success(fmt.Sprintf(msgValidFmt, f.Label())))
	return validBlock(f, summary)
}

// ValidateJSON validates input as JSON.
func (c *Controller) ValidateJSON(input string) ResultBlock {
	return c.Validate(input, format.JSON)
}

// ValidateYAML validates input as YAML.
func (c *Controller) ValidateYAML(input string) ResultBlock {
	return c.Validate(input, format.YAML)
}

// ValidatorFormat returns the format checked by a validator tab.
func ValidatorFormat(id TabID) (format.Format, bool) {
	switch id {
	case TabJSONValidator:
		return format.JSON, true
	case TabYAMLValidator:
		return format.YAML, true
	default:
		return format.JSON, false
	}
}
