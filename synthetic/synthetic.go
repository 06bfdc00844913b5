// Package synthetic builds the placeholder record returned when no provider answers.
package synthetic

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidgrab/vidgrab/source"
)

// ID is the provider identifier of synthetic records.
const ID = "synthetic"

const (
	title     = "Sample Video - Professional Quality Download"
	thumbnail = "https://via.placeholder.com/320x240/667eea/ffffff?text=Video+Thumbnail"
	duration  = "3:45"
	uploader  = "Demo Channel"
)

type preset struct {
	quality, format string
	size            int64
}

var presets = []preset{
	{"1080p", "mp4", 52428800},
	{"720p", "mp4", 31457280},
	{"480p", "mp4", 20971520},
	{"audio", "mp3", 5242880},
}

// Generate returns a fresh placeholder record. The output does not depend on url
// and none of its renditions can be retrieved.
func Generate(url string) *source.Record {
	record := source.NewRecord(ID, title)
	record.Thumbnail = mo.Some(thumbnail)
	record.Duration = mo.Some(duration)
	record.Uploader = mo.Some(uploader)
	record.Renditions = lo.Map(presets, func(r preset, _ int) *source.Rendition {
		return source.NewRendition(source.Placeholder, r.quality, r.format).WithSize(lo.ToPtr(r.size))
	})
	return record
}

// Is reports whether record carries only placeholder renditions.
func Is(record *source.Record) bool {
	if record == nil || len(record.Renditions) == 0 {
		return false
	}
	return lo.EveryBy(record.Renditions, (*source.Rendition).IsPlaceholder)
}
