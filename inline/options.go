package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidgrab/vidgrab/rendition"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/view"
)

// Picker narrows the actionable items of a resolved model.
type Picker func(items []view.Item) []view.Item

type Options struct {
	Out      io.Writer
	Resolver *resolver.Resolver
	URL      string
	Json     bool
	Picker   mo.Option[Picker]
}

// ParsePicker parses a rendition selector:
//
//	all      every actionable item
//	first    the first item
//	last     the last item
//	best     the tallest video item
//	audio    audio-only items
//	[n]      the item with 1-based index n
//	[label]  items whose quality equals label, e.g. 720p
func ParsePicker(description string) (Picker, error) {
	description = strings.TrimSpace(description)

	switch strings.ToLower(description) {
	case "":
		return nil, fmt.Errorf("empty picker")
	case "all":
		return func(items []view.Item) []view.Item {
			return items
		}, nil
	case "first":
		return func(items []view.Item) []view.Item {
			return lo.Subset(items, 0, 1)
		}, nil
	case "last":
		return func(items []view.Item) []view.Item {
			return lo.Subset(items, -1, 1)
		}, nil
	case "best":
		return best, nil
	case "audio":
		return func(items []view.Item) []view.Item {
			return lo.Filter(items, func(item view.Item, _ int) bool {
				return item.Audio()
			})
		}, nil
	}

	if n, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(items []view.Item) []view.Item {
			return lo.Filter(items, func(item view.Item, _ int) bool {
				return item.Index == int(n)
			})
		}, nil
	}

	return func(items []view.Item) []view.Item {
		return lo.Filter(items, func(item view.Item, _ int) bool {
			return strings.EqualFold(item.Quality, description)
		})
	}, nil
}

func best(items []view.Item) []view.Item {
	videos := lo.Filter(items, func(item view.Item, _ int) bool {
		return !item.Audio()
	})
	if len(videos) == 0 {
		return nil
	}

	top := lo.MaxBy(videos, func(a, b view.Item) bool {
		return height(a) > height(b)
	})
	return []view.Item{top}
}

func height(item view.Item) int {
	n, ok := rendition.LeadingInt(item.Quality)
	if !ok {
		return -1
	}
	return n
}
