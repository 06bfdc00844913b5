package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidgrab/vidgrab/resolver"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.abandon()
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case resolvedMsg:
		if msg.generation != b.generation || b.state != resolvingState {
			return b, cmd
		}
		return b, tea.Batch(cmd, b.showResults(msg.model))
	case transitionMsg:
		b.waiting = false
		if b.state != resolvingState {
			return b, cmd
		}
		b.status = b.describe(resolver.Transition(msg))
		return b, tea.Batch(cmd, b.waitForTransition())
	case spinner.TickMsg:
		if b.state != resolvingState {
			return b, cmd
		}
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.abandon()
			return b, tea.Quit
		}

		switch b.state {
		case inputState:
			return b, tea.Batch(cmd, b.updateInput(msg))
		case resolvingState:
			if bubblesKey.Matches(msg, b.keymap.back) {
				b.abandon()
				b.setState(inputState)
			}
			return b, cmd
		case resultsState:
			return b, tea.Batch(cmd, b.updateResults(msg))
		case errorState:
			switch {
			case bubblesKey.Matches(msg, b.keymap.back):
				b.setState(inputState)
			case bubblesKey.Matches(msg, b.keymap.quit):
				return b, tea.Quit
			}
			return b, cmd
		}
	}

	if b.state == inputState {
		var input tea.Cmd
		b.inputC, input = b.inputC.Update(msg)
		return b, tea.Batch(cmd, input)
	}

	return b, cmd
}

func (b *statefulBubble) updateInput(msg tea.KeyMsg) tea.Cmd {
	if bubblesKey.Matches(msg, b.keymap.confirm) {
		url := strings.TrimSpace(b.inputC.Value())
		if url == "" {
			return nil
		}
		return b.resolve(url)
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateResults(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.deliver):
		return b.deliverSelected()
	case bubblesKey.Matches(msg, b.keymap.preview):
		return b.openPreview()
	case bubblesKey.Matches(msg, b.keymap.back):
		b.inputC.SetValue("")
		b.setState(inputState)
		return nil
	}

	var cmd tea.Cmd
	b.resultsC, cmd = b.resultsC.Update(msg)
	return cmd
}
