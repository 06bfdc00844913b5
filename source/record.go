package source

import (
	"strings"

	"github.com/samber/mo"
)

const (
	// Placeholder is the sentinel URL of renditions that cannot be retrieved.
	Placeholder = "#"

	// UnknownQuality replaces quality tokens a provider left out.
	UnknownQuality = "unknown"

	// DefaultFormat is used when a provider does not name the container.
	DefaultFormat = "mp4"

	// DefaultTitle is used when a provider does not supply a title.
	DefaultTitle = "Downloaded Video"
)

// Rendition is one concrete downloadable variant of a media asset.
type Rendition struct {
	// Direct or redirect URL of the asset, or Placeholder.
	URL string `json:"url"`
	// Provider quality token (e.g. "1080p", "audio", "720").
	Quality string `json:"quality"`
	// Lowercase container token (e.g. "mp4", "mp3").
	Format string `json:"format"`
	// Size in bytes, absent when unknown.
	Size mo.Option[int64] `json:"size"`
	// Frames per second, absent when unknown.
	FPS mo.Option[int] `json:"fps"`
}

// NewRendition builds a rendition honoring the non-empty quality and format invariants.
func NewRendition(url, quality, format string) *Rendition {
	quality = strings.TrimSpace(quality)
	if quality == "" {
		quality = UnknownQuality
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultFormat
	}

	return &Rendition{
		URL:     url,
		Quality: quality,
		Format:  format,
	}
}

// WithSize sets the size when bytes is known and non-negative.
func (r *Rendition) WithSize(bytes *int64) *Rendition {
	if bytes != nil && *bytes >= 0 {
		r.Size = mo.Some(*bytes)
	}
	return r
}

// WithFPS sets the frame rate when fps is known and positive.
func (r *Rendition) WithFPS(fps *int) *Rendition {
	if fps != nil && *fps > 0 {
		r.FPS = mo.Some(*fps)
	}
	return r
}

// IsPlaceholder reports whether the rendition is a non-functional placeholder.
func (r *Rendition) IsPlaceholder() bool {
	return r.URL == Placeholder
}

// String returns the quality for display.
func (r *Rendition) String() string {
	return r.Quality
}

// Record is the canonical resolution result shared by all providers.
// It is built once per resolution and only read afterwards.
type Record struct {
	Title      string            `json:"title"`
	Thumbnail  mo.Option[string] `json:"thumbnail"`
	Duration   mo.Option[string] `json:"duration"`
	Uploader   mo.Option[string] `json:"uploader"`
	Views      mo.Option[int64]  `json:"views"`
	Renditions []*Rendition      `json:"renditions"`
	// Provider is the ID of the source that produced the record.
	Provider string `json:"provider"`
}

// NewRecord builds a record with the default title applied.
func NewRecord(provider, title string, renditions ...*Rendition) *Record {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	return &Record{
		Title:      title,
		Renditions: renditions,
		Provider:   provider,
	}
}

// Text converts an optional provider string into an option, treating empty as absent.
func Text(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}
