package tui

import (
	"fmt"
	"strings"

	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/view"
)

// listItem adapts a rendition to list.DefaultItem.
type listItem struct {
	item view.Item
}

func (t *listItem) Title() string {
	badge := style.Badge(t.item.Class.Tier)(strings.TrimSpace(icon.Get(t.item.Class.Icon) + " " + t.item.Quality))
	return fmt.Sprintf("%s %s", badge, t.item.Class.Label)
}

func (t *listItem) Description() string {
	parts := []string{t.item.Format, t.item.Size}
	if t.item.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%dfps", t.item.FPS))
	}

	if t.item.Actionable {
		parts = append(parts, t.item.Filename)
	} else {
		parts = append(parts, "unavailable")
	}

	return strings.Join(parts, " · ")
}

func (t *listItem) FilterValue() string {
	return t.item.Quality
}
