// Package tui implements the interactive paste, resolve and pick flow.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidgrab/vidgrab/resolver"
)

// Options configures a TUI session.
type Options struct {
	// URL, when set, is resolved immediately instead of prompting.
	URL string
}

// Run starts the TUI over the sources of r.
func Run(r *resolver.Resolver, options *Options) error {
	bubble := newBubble(r, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
