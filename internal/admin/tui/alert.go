package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AlertKind selects the styling of a transient alert
type AlertKind int

const (
	AlertInfo AlertKind = iota
	AlertSuccess
	AlertWarning
	AlertError
)

func (k AlertKind) String() string {
	switch k {
	case AlertSuccess:
		return "success"
	case AlertWarning:
		return "warning"
	case AlertError:
		return "error"
	default:
		return "info"
	}
}

// Alert is a notification shown above the list until it expires.
type Alert struct {
	ID   int
	Kind AlertKind
	Text string
}

// alertExpiredMsg dismisses the alert with the same id. A newer alert
// replaces the old one, so expiry of a replaced alert is ignored.
type alertExpiredMsg struct {
	id int
}

// tickFunc schedules a message after d; tea.Tick in production.
type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// showAlert replaces the current alert and schedules its expiry.
func (m *AppModel) showAlert(kind AlertKind, text string) tea.Cmd {
	m.alertSeq++
	id := m.alertSeq
	m.Alert = &Alert{ID: id, Kind: kind, Text: text}

	if m.opts.AlertTimeout <= 0 {
		return nil
	}
	return m.tick(m.opts.AlertTimeout, func(time.Time) tea.Msg {
		return alertExpiredMsg{id: id}
	})
}

func (m *AppModel) expireAlert(id int) {
	if m.Alert != nil && m.Alert.ID == id {
		m.Alert = nil
	}
}

func renderAlert(a *Alert, width int) string {
	if a == nil {
		return ""
	}

	style := AlertStyle(a.Kind)
	if width > 8 {
		style = style.Width(width - 6)
	}

	var icon string
	switch a.Kind {
	case AlertSuccess:
		icon = "✓ "
	case AlertWarning:
		icon = "⚠ "
	case AlertError:
		icon = "✗ "
	default:
		icon = "ℹ "
	}
	return style.Render(icon + a.Text)
}
