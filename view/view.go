// Package view turns a resolved record into inert data ready for any renderer.
package view

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/format"
	"github.com/vidgrab/vidgrab/platform"
	"github.com/vidgrab/vidgrab/rendition"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/synthetic"
	"github.com/vidgrab/vidgrab/util"
)

// Item is the render-ready form of one rendition.
type Item struct {
	// Index is 1-based, matching what users type.
	Index      int             `json:"index"`
	URL        string          `json:"url"`
	Quality    string          `json:"quality"`
	Format     string          `json:"format"`
	Size       string          `json:"size"`
	FPS        int             `json:"fps,omitempty"`
	Class      rendition.Class `json:"class"`
	Filename   string          `json:"filename"`
	Actionable bool            `json:"actionable"`
}

// Model is the render-ready form of a record.
type Model struct {
	SourceURL string            `json:"source_url"`
	Platform  platform.Identity `json:"platform"`
	Title     string            `json:"title"`
	Thumbnail string            `json:"thumbnail,omitempty"`
	Duration  string            `json:"duration"`
	Uploader  string            `json:"uploader,omitempty"`
	Views     string            `json:"views,omitempty"`
	Provider  string            `json:"provider"`
	Items     []Item            `json:"items"`
	// Synthetic is set when no provider answered and every item is a placeholder.
	Synthetic bool `json:"synthetic"`
}

// Map builds the model of record. The platform is derived from sourceURL, not the record.
func Map(record *source.Record, sourceURL string) Model {
	items := lo.Map(record.Renditions, func(r *source.Rendition, i int) Item {
		return Item{
			Index:      i + 1,
			URL:        r.URL,
			Quality:    r.Quality,
			Format:     strings.ToUpper(r.Format),
			Size:       format.Size(r.Size),
			FPS:        r.FPS.OrEmpty(),
			Class:      rendition.Classify(r.Quality, r.Format),
			Filename:   Filename(record.Title, r.Format),
			Actionable: !r.IsPlaceholder(),
		}
	})

	return Model{
		SourceURL: sourceURL,
		Platform:  platform.Classify(sourceURL),
		Title:     record.Title,
		Thumbnail: record.Thumbnail.OrEmpty(),
		Duration:  format.DurationText(record.Duration.OrEmpty()),
		Uploader:  record.Uploader.OrEmpty(),
		Views:     views(record),
		Provider:  record.Provider,
		Items:     items,
		Synthetic: synthetic.Is(record),
	}
}

func views(record *source.Record) string {
	if n, ok := record.Views.Get(); ok {
		return format.Count(n)
	}
	return ""
}

// Filename is the suggested name for saving a rendition of title.
func Filename(title, containerFormat string) string {
	return util.SanitizeFilename(title) + "." + containerFormat
}

// audioContainers carry no video when the quality names no height.
var audioContainers = []string{"m4a", "mp3", "aac", "opus", "ogg", "oga", "wav", "flac", "weba"}

// Audio reports whether the item carries sound only: an audio format, a
// quality of "audio", or a quality without a height in an audio container.
func (i Item) Audio() bool {
	if i.Class.Tier == rendition.TierAudio || strings.EqualFold(i.Quality, "audio") {
		return true
	}
	if _, ok := rendition.LeadingInt(i.Quality); ok {
		return false
	}
	return lo.Contains(audioContainers, strings.ToLower(i.Format))
}

// Actionable returns the items that can be delivered.
func (m Model) Actionable() []Item {
	return lo.Filter(m.Items, func(item Item, _ int) bool {
		return item.Actionable
	})
}

// Item returns the item with the 1-based index n.
func (m Model) Item(n int) (Item, bool) {
	if n < 1 || n > len(m.Items) {
		return Item{}, false
	}
	return m.Items[n-1], true
}
