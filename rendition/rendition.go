// Package rendition classifies raw quality/format pairs into display tiers.
//
// Two ladders are kept on purpose: the badge tier floors at 480p (everything lower
// shares the quality-360p badge) while the label ladder has its own 360p step and
// only then falls back to "Standard Quality".
package rendition

import (
	"math"
	"strings"
	"unicode"

	"github.com/vidgrab/vidgrab/icon"
)

// Tier is the badge class of a rendition.
type Tier string

const (
	TierAudio Tier = "quality-audio"
	Tier4K    Tier = "quality-4k"
	Tier1080p Tier = "quality-1080p"
	Tier720p  Tier = "quality-720p"
	Tier480p  Tier = "quality-480p"
	Tier360p  Tier = "quality-360p"
)

// Class is the presentation classification of one rendition.
type Class struct {
	Tier  Tier      `json:"tier"`
	Label string    `json:"label"`
	Icon  icon.Icon `json:"icon"`
}

// AudioLabel is the label of every audio-only rendition.
const AudioLabel = "Audio Only"

// Classify derives the tier, label and icon of a rendition.
// A format containing "audio" wins over any quality value.
func Classify(quality, format string) Class {
	if strings.Contains(format, "audio") {
		return Class{Tier: TierAudio, Label: AudioLabel, Icon: icon.Music}
	}

	height, ok := LeadingInt(quality)
	return Class{
		Tier:  badge(height, ok),
		Label: label(height, ok),
		Icon:  glyph(height, ok),
	}
}

func badge(height int, ok bool) Tier {
	switch {
	case !ok:
		return Tier360p
	case height >= 2160:
		return Tier4K
	case height >= 1080:
		return Tier1080p
	case height >= 720:
		return Tier720p
	case height >= 480:
		return Tier480p
	default:
		return Tier360p
	}
}

func label(height int, ok bool) string {
	switch {
	case !ok:
		return "Standard Quality"
	case height >= 2160:
		return "4K Ultra HD"
	case height >= 1080:
		return "Full HD 1080p"
	case height >= 720:
		return "HD 720p"
	case height >= 480:
		return "SD 480p"
	case height >= 360:
		return "SD 360p"
	default:
		return "Standard Quality"
	}
}

func glyph(height int, ok bool) icon.Icon {
	switch {
	case !ok:
		return icon.Play
	case height >= 2160:
		return icon.Gem
	case height >= 1080:
		return icon.Crown
	case height >= 720:
		return icon.Star
	default:
		return icon.Play
	}
}

// MaxLeadingInt caps the magnitude LeadingInt reports for very long digit runs.
const MaxLeadingInt = math.MaxInt32

// LeadingInt parses the integer prefix of s: optional leading whitespace, an optional sign
// and at least one digit. Digit runs too large to hold saturate at MaxLeadingInt.
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n <= (MaxLeadingInt-9)/10 {
			n = n*10 + int(s[digits]-'0')
		} else {
			n = MaxLeadingInt
		}
		digits++
	}

	if digits == 0 {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}
