// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/fmtkit/internal/toolkit"
)

func TestNewToastManagerDuration(t *testing.T) {
	if d := NewToastManager(0).Duration(); d != DefaultToastDuration {
		t.Errorf("Expected default duration %v, got %v", DefaultToastDuration, d)
	}
	if d := NewToastManager(5 * time.Second).Duration(); d != 5*time.Second {
		t.Errorf("Expected 5s, got %v", d)
	}
}

func TestToastIsExpired(t *testing.T) {
	toast := Toast{Message: "Test", Duration: 10 * time.Millisecond, CreatedAt: time.Now().Add(-20 * time.Millisecond)}
	if !toast.IsExpired() {
		t.Error("Toast should be expired")
	}
	if toast.TimeRemaining() != 0 {
		t.Errorf("Expired toast should have no time remaining, got %v", toast.TimeRemaining())
	}

	fresh := Toast{Message: "Fresh", Duration: time.Minute, CreatedAt: time.Now()}
	if fresh.IsExpired() {
		t.Error("Fresh toast should not be expired")
	}
}

func TestToastManager(t *testing.T) {
	manager := NewToastManager(0)

	if manager.HasToasts() {
		t.Error("New manager should have no toasts")
	}

	id1 := manager.AddError("Error 1")
	id2 := manager.AddSuccess("Success 1")
	if id1 == id2 {
		t.Error("Toast IDs should be unique")
	}

	toasts := manager.GetToasts()
	if len(toasts) != 2 {
		t.Fatalf("Expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].Kind != ToastKindSuccess || toasts[1].Kind != ToastKindError {
		t.Error("Toasts should be newest first with their kinds preserved")
	}
	if toasts[0].Duration != DefaultToastDuration {
		t.Errorf("Expected manager duration to be applied, got %v", toasts[0].Duration)
	}

	manager.RemoveToast(id1)
	if got := len(manager.GetToasts()); got != 1 {
		t.Errorf("Expected 1 toast after removal, got %d", got)
	}

	manager.Clear()
	if manager.HasToasts() {
		t.Error("Manager should have no toasts after clear")
	}
}

func TestToastManagerMaxToasts(t *testing.T) {
	manager := NewToastManager(0)
	manager.maxToasts = 3

	for _, msg := range []string{"Toast 1", "Toast 2", "Toast 3", "Toast 4", "Toast 5"} {
		manager.AddSuccess(msg)
	}

	toasts := manager.GetToasts()
	if len(toasts) != 3 {
		t.Fatalf("Expected max 3 toasts, got %d", len(toasts))
	}
	if toasts[0].Message != "Toast 5" {
		t.Error("Newest toast should be first")
	}
}

func TestToastTickExpiry(t *testing.T) {
	manager := NewToastManager(0)

	manager.AddToast(Toast{
		Message:   "Expired",
		Duration:  10 * time.Millisecond,
		CreatedAt: time.Now().Add(-100 * time.Millisecond),
	})
	manager.AddSuccess("Fresh")

	remaining := manager.TickToasts()
	if len(remaining) != 1 {
		t.Fatalf("Expected 1 remaining toast after tick, got %d", len(remaining))
	}
	if remaining[0].Message != "Fresh" {
		t.Error("Fresh toast should remain")
	}
}

func TestToastManagerNotify(t *testing.T) {
	manager := NewToastManager(0)
	var n toolkit.Notifier = manager

	n.Notify(toolkit.Notification{Severity: toolkit.SeverityError, Message: "bad"})
	n.Notify(toolkit.Notification{Severity: toolkit.SeveritySuccess, Message: "good"})

	toasts := manager.GetToasts()
	if len(toasts) != 2 {
		t.Fatalf("Expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].Message != "good" || toasts[0].Kind != ToastKindSuccess {
		t.Errorf("Unexpected newest toast %+v", toasts[0])
	}
	if toasts[1].Message != "bad" || toasts[1].Kind != ToastKindError {
		t.Errorf("Unexpected oldest toast %+v", toasts[1])
	}
}

func TestToastManagerNotifyFromController(t *testing.T) {
	manager := NewToastManager(0)
	c, err := toolkit.New(toolkit.Options{Notifier: manager})
	if err != nil {
		t.Fatalf("toolkit.New: %v", err)
	}

	c.Convert("   ")

	toasts := manager.GetToasts()
	if len(toasts) != 1 || toasts[0].Message != toolkit.MsgEmptyConvert {
		t.Errorf("Expected empty-input toast, got %+v", toasts)
	}
}

func TestKindForSeverity(t *testing.T) {
	if KindForSeverity(toolkit.SeverityError) != ToastKindError {
		t.Error("error severity should map to error toast")
	}
	if KindForSeverity(toolkit.SeveritySuccess) != ToastKindSuccess {
		t.Error("success severity should map to success toast")
	}
}

func TestWrapToastText(t *testing.T) {
	if got := wrapToastText("short", 20); got != "short" {
		t.Errorf("Expected unchanged text, got %q", got)
	}

	got := wrapToastText("one two three four five", 9)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 9 {
			t.Errorf("Line %q exceeds width 9", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "one two three four five" {
		t.Errorf("Wrapping lost words: %q", got)
	}
}

func TestRenderToast(t *testing.T) {
	toast := Toast{Message: "Copied to clipboard!", Kind: ToastKindSuccess, CreatedAt: time.Now(), Duration: time.Minute}
	rendered := RenderToast(toast, 80)

	if !strings.Contains(rendered, "Copied to clipboard!") {
		t.Errorf("Rendered toast should contain the message, got %q", rendered)
	}
}

func TestRenderToastStack(t *testing.T) {
	toasts := []Toast{
		{Message: "Error 1", Kind: ToastKindError, CreatedAt: time.Now(), Duration: time.Minute},
		{Message: "Success 1", Kind: ToastKindSuccess, CreatedAt: time.Now(), Duration: time.Minute},
	}

	rendered := RenderToastStack(toasts, 100, 40)
	if rendered == "" {
		t.Error("Rendered toast stack should not be empty")
	}
	if !strings.Contains(rendered, "Error 1") || !strings.Contains(rendered, "Success 1") {
		t.Error("Rendered stack should contain every toast")
	}
}

func TestRenderToastStackEmpty(t *testing.T) {
	if rendered := RenderToastStack(nil, 100, 40); rendered != "" {
		t.Error("Empty toast stack should render empty string")
	}
}
