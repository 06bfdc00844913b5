package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.options != nil && b.options.URL != "" {
		b.inputC.SetValue(b.options.URL)
		return b.resolve(b.options.URL)
	}

	return textinput.Blink
}
