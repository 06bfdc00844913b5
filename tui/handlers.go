package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/deliver"
	"github.com/vidgrab/vidgrab/open"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/view"
)

type resolvedMsg struct {
	generation int
	model      view.Model
}

type transitionMsg resolver.Transition

// resolve starts a resolution of url, abandoning any previous one.
func (b *statefulBubble) resolve(url string) tea.Cmd {
	if _, err := resolver.Validate(url); err != nil {
		b.raiseError(err)
		return nil
	}

	b.abandon()
	b.generation++
	generation := b.generation

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.status = "Validating link"
	b.setState(resolvingState)

	return tea.Batch(
		b.spinnerC.Tick,
		b.waitForTransition(),
		func() tea.Msg {
			defer cancel()

			record, err := b.resolver.Resolve(ctx, url)
			if err != nil {
				return err
			}
			return resolvedMsg{generation: generation, model: view.Map(record, url)}
		},
	)
}

// abandon cancels the in-flight resolution, if any.
func (b *statefulBubble) abandon() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// waitForTransition keeps at most one reader on the transitions channel.
func (b *statefulBubble) waitForTransition() tea.Cmd {
	if b.waiting {
		return nil
	}
	b.waiting = true

	return func() tea.Msg {
		return transitionMsg(<-b.transitions)
	}
}

func (b *statefulBubble) describe(t resolver.Transition) string {
	switch t.State {
	case resolver.Trying:
		return fmt.Sprintf("Asking %s (%d/%d)", t.Source, t.Index+1, len(b.resolver.Sources()))
	case resolver.Exhausted:
		return "No provider answered, preparing placeholders"
	case resolver.Succeeded:
		return "Done"
	default:
		return "Validating link"
	}
}

func (b *statefulBubble) showResults(model view.Model) tea.Cmd {
	b.model = model
	b.cancel = nil
	b.resultsC.Title = model.Platform.Label + " · " + model.Title

	items := lo.Map(model.Items, func(item view.Item, _ int) list.Item {
		return &listItem{item: item}
	})

	b.setState(resultsState)
	cmd := b.resultsC.SetItems(items)
	if model.Synthetic {
		return tea.Batch(cmd, notify("No provider could resolve this link, showing placeholders"))
	}
	return cmd
}

func (b *statefulBubble) selected() (view.Item, bool) {
	selected, ok := b.resultsC.SelectedItem().(*listItem)
	if !ok {
		return view.Item{}, false
	}
	return selected.item, true
}

func (b *statefulBubble) deliverSelected() tea.Cmd {
	item, ok := b.selected()
	if !ok {
		return nil
	}
	if !item.Actionable {
		return notify("Placeholder rendition, nothing to download")
	}

	if err := deliver.Deliver(item.URL, item.Filename); err != nil {
		return notify("Download unavailable, press o to open the preview link")
	}
	return notify("Opened " + item.Filename)
}

// openURL is replaced in tests.
var openURL = open.Start

// openPreview opens the selected rendition's own link in the default handler.
func (b *statefulBubble) openPreview() tea.Cmd {
	item, ok := b.selected()
	if !ok {
		return nil
	}
	if !item.Actionable {
		return notify("No preview for a placeholder rendition")
	}

	if err := openURL(item.URL, ""); err != nil {
		return notify(err.Error())
	}
	return notify("Opened preview of " + item.Filename)
}

// notify shows text in the status line through the notifier.
func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}
