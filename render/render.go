// Package render draws a view.Model for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/format"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/view"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// ExhaustedNotice is shown when every item is a placeholder.
const ExhaustedNotice = "No provider could resolve this link. The results below are placeholders and cannot be downloaded."

// Width returns the width to render at, bounded by the terminal.
func Width() int {
	w, _, err := util.TerminalSize()
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return util.Min(w, maxWidth)
}

// Model writes model to w at the given width.
func Model(w io.Writer, model view.Model, width int) error {
	_, err := io.WriteString(w, String(model, width))
	return err
}

// String renders model as a block of text at the given width.
func String(model view.Model, width int) string {
	var b strings.Builder

	b.WriteString(Header(model, width))
	b.WriteString("\n\n")

	if model.Synthetic {
		b.WriteString(Notice(width))
		b.WriteString("\n\n")
	}

	for _, item := range model.Items {
		b.WriteString(Item(item, width))
		b.WriteString("\n")
	}

	return b.String()
}

// Header renders the platform tag, title and metadata line.
func Header(model view.Model, width int) string {
	tag := style.Accent(model.Platform.Accent)(strings.TrimSpace(icon.Get(model.Platform.Icon) + " " + model.Platform.Label))
	title := style.New().Bold(true).Foreground(style.Text).Render(wordwrap.String(model.Title, width))

	return lipgloss.JoinVertical(lipgloss.Left, tag, title, Meta(model))
}

// Meta renders the optional metadata joined on one line.
func Meta(model view.Model) string {
	var parts []string
	if model.Duration != "" && model.Duration != format.UnknownDuration {
		parts = append(parts, withIcon(icon.Clock, model.Duration))
	}
	if model.Uploader != "" {
		parts = append(parts, withIcon(icon.User, model.Uploader))
	}
	if model.Views != "" {
		parts = append(parts, withIcon(icon.Eye, model.Views+" views"))
	}
	parts = append(parts, "via "+model.Provider)

	return style.Fg(style.Subtext)(strings.Join(parts, "  "))
}

// Notice renders the degraded-mode warning.
func Notice(width int) string {
	text := wordwrap.String(withIcon(icon.Warn, ExhaustedNotice), width)
	return style.Fg(style.WarningColor)(text)
}

// Item renders one numbered rendition row.
func Item(item view.Item, width int) string {
	index := style.Fg(style.FaintColor)(fmt.Sprintf("%2d.", item.Index))
	badge := style.Badge(item.Class.Tier)(strings.TrimSpace(icon.Get(item.Class.Icon) + " " + item.Quality))

	details := []string{item.Class.Label, item.Format, item.Size}
	if item.FPS > 0 {
		details = append(details, fmt.Sprintf("%dfps", item.FPS))
	}

	target := style.Fg(style.Blue)(withIcon(icon.Download, item.Filename))
	if !item.Actionable {
		target = style.Fg(style.FaintColor)(withIcon(icon.Fail, "unavailable"))
	}

	line := lo.Reduce([]string{badge, strings.Join(details, " · "), target}, func(acc, part string, _ int) string {
		return acc + " " + part
	}, index)

	return truncate.StringWithTail(line, uint(width), "…")
}

func withIcon(i icon.Icon, text string) string {
	if glyph := icon.Get(i); glyph != "" {
		return glyph + " " + text
	}
	return text
}
