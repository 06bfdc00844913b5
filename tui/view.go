package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/render"
	"github.com/vidgrab/vidgrab/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case inputState:
		output = b.viewInput()
	case resolvingState:
		output = b.viewResolving()
	case resultsState:
		output = b.viewResults()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewInput() string {
	return b.renderLines(true, []string{
		style.Title("Paste a link"),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewResolving() string {
	return b.renderLines(true, []string{
		style.Title("Resolving"),
		"",
		style.Truncate(b.width)(b.inputC.Value()),
		"",
		b.spinnerC.View() + " " + b.status,
	})
}

func (b *statefulBubble) viewResults() string {
	header := render.Meta(b.model)
	if b.model.Synthetic {
		header = lipgloss.JoinVertical(lipgloss.Left, header, render.Notice(b.width))
	}
	return listExtraPaddingStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", b.resultsC.View()))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(fmt.Sprint(b.lastError)), b.width)
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " Could not resolve the link:",
		"",
		errorMsg,
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
