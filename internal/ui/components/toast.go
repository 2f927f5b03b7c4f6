// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
	"github.com/jeranaias/fmtkit/internal/util"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindSuccess is a success toast (emerald color)
	ToastKindSuccess ToastKind = iota
	// ToastKindError is an error toast (rose color)
	ToastKindError
)

// DefaultToastDuration is how long a toast stays on screen.
const DefaultToastDuration = 3 * time.Second

// ToastTickInterval is the period of ToastTickCmd.
const ToastTickInterval = 100 * time.Millisecond

// KindForSeverity maps a notification severity to a toast kind.
func KindForSeverity(s toolkit.Severity) ToastKind {
	if s == toolkit.SeverityError {
		return ToastKindError
	}
	return ToastKindSuccess
}

// =============================================================================
// TOAST
// =============================================================================

// Toast is a non-blocking notification that auto-dismisses.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// TimeRemaining returns how much time is left before auto-dismiss.
func (t *Toast) TimeRemaining() time.Duration {
	remaining := t.Duration - time.Since(t.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager holds the visible toasts. It implements toolkit.Notifier so
// the controller can report straight into the UI.
type ToastManager struct {
	toasts    []Toast
	nextID    int
	maxToasts int
	duration  time.Duration
	mutex     sync.Mutex
}

// NewToastManager creates a manager whose toasts live for duration.
// A non-positive duration selects DefaultToastDuration.
func NewToastManager(duration time.Duration) *ToastManager {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &ToastManager{
		toasts:    make([]Toast, 0),
		nextID:    1,
		maxToasts: 5,
		duration:  duration,
	}
}

// Duration returns the lifetime given to new toasts.
func (m *ToastManager) Duration() time.Duration {
	return m.duration
}

// AddToast adds a toast and returns its ID. Zero fields are filled in.
func (m *ToastManager) AddToast(toast Toast) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if toast.ID == 0 {
		toast.ID = m.nextID
		m.nextID++
	}
	if toast.CreatedAt.IsZero() {
		toast.CreatedAt = time.Now()
	}
	if toast.Duration <= 0 {
		toast.Duration = m.duration
	}

	// Newest first
	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}

	return toast.ID
}

// AddError adds an error toast.
func (m *ToastManager) AddError(message string) int {
	return m.AddToast(Toast{Message: message, Kind: ToastKindError})
}

// AddSuccess adds a success toast.
func (m *ToastManager) AddSuccess(message string) int {
	return m.AddToast(Toast{Message: message, Kind: ToastKindSuccess})
}

// Notify implements toolkit.Notifier.
func (m *ToastManager) Notify(n toolkit.Notification) {
	m.AddToast(Toast{Message: n.Message, Kind: KindForSeverity(n.Severity)})
}

// RemoveToast removes a toast by ID.
func (m *ToastManager) RemoveToast(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, toast := range m.toasts {
		if toast.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// TickToasts removes expired toasts and returns a copy of the rest.
func (m *ToastManager) TickToasts() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	active := make([]Toast, 0, len(m.toasts))
	for _, toast := range m.toasts {
		if !toast.IsExpired() {
			active = append(active, toast)
		}
	}
	m.toasts = active

	result := make([]Toast, len(active))
	copy(result, active)
	return result
}

// GetToasts returns a copy of the current toasts.
func (m *ToastManager) GetToasts() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Toast, len(m.toasts))
	copy(result, m.toasts)
	return result
}

// HasToasts returns true if there are any active toasts.
func (m *ToastManager) HasToasts() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// Clear removes all toasts.
func (m *ToastManager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.toasts = make([]Toast, 0)
}

var _ toolkit.Notifier = (*ToastManager)(nil)

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastTickMsg is sent periodically to expire toasts.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd returns a command that ticks toasts every ToastTickInterval.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(ToastTickInterval, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

// RenderToast renders a single toast notification.
func RenderToast(toast Toast, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	var color lipgloss.AdaptiveColor
	var icon string
	switch toast.Kind {
	case ToastKindError:
		color = styles.Rose
		icon = styles.StatusIndicators.Error
	default:
		color = styles.Emerald
		icon = styles.StatusIndicators.Success
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	message := wrapToastText(toast.Message, maxWidth-10)
	content := iconStyle.Render(icon+" ") + messageStyle.Render(message)

	if secs := int(toast.TimeRemaining().Seconds()); secs > 0 {
		content += " " + lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render(strconv.Itoa(secs)+"s")
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		MaxWidth(maxWidth).
		Render(content)
}

// RenderToastStack renders toasts stacked vertically and right-aligned.
// With a known screen size the stack is placed in the bottom-right corner.
func RenderToastStack(toasts []Toast, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		rendered = append(rendered, RenderToast(toast, width))
	}

	positioned := lipgloss.NewStyle().
		MarginRight(2).
		Render(lipgloss.JoinVertical(lipgloss.Right, rendered...))

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, positioned)
	}
	return positioned
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// wrapToastText word-wraps text to maxWidth display cells.
func wrapToastText(text string, maxWidth int) string {
	if maxWidth <= 0 || util.StringWidth(text) <= maxWidth {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		w := util.StringWidth(word)
		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= maxWidth:
			current.WriteString(" ")
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = w
		}
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return strings.Join(lines, "\n")
}
