// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolkit

// Severity classifies a notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "success"
}

// Notification is a short message for the user.
type Notification struct {
	Severity Severity
	Message  string
}

// Notifier displays notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})

// User-facing messages.
const (
	MsgEmptyConvert     = "Please enter some data to convert"
	MsgConvertOK        = "Conversion successful!"
	MsgConvertFailed    = "Conversion failed. Please check your input format."
	MsgNothingToCopy    = "Nothing to copy"
	MsgCopied           = "Copied to clipboard!"
	msgEmptyValidateFmt = "Please enter %s data to validate"
	msgValidFmt         = "%s is valid!"
	msgInvalidFmt       = "%s validation failed"
)

func success(msg string) Notification {
	return Notification{Severity: SeveritySuccess, Message: msg}
}

func failure(msg string) Notification {
	return Notification{Severity: SeverityError, Message: msg}
}
