// Package ui holds small bubbletea components shared by interactive views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// lifetime is how long a notification stays on screen.
const lifetime = 3 * time.Second

// Model shows short status notifications appended to the last line of a view.
// Any string message sent through the program becomes the current notification.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// clearMsg carries the time of the notification it clears, so a newer one survives.
type clearMsg struct {
	at time.Time
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.notifiedAt = time.Now()
		at := m.notifiedAt
		return tea.Tick(lifetime, func(time.Time) tea.Msg {
			return clearMsg{at: at}
		})
	case clearMsg:
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Notification returns the text currently shown.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + lipgloss.NewStyle().Faint(true).Render(m.notification)
	return strings.Join(lines, "\n")
}
