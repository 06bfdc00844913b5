// Package platform maps a pasted URL to the visual identity of the platform hosting it.
package platform

import (
	"strings"

	"github.com/vidgrab/vidgrab/icon"
)

// Identity is the display identity of a source platform.
type Identity struct {
	Label  string    `json:"label"`
	Icon   icon.Icon `json:"icon"`
	Accent string    `json:"accent"`
}

var (
	youtube     = Identity{Label: "YouTube", Icon: icon.YouTube, Accent: "#ff0000"}
	instagram   = Identity{Label: "Instagram", Icon: icon.Instagram, Accent: "#e4405f"}
	tiktok      = Identity{Label: "TikTok", Icon: icon.TikTok, Accent: "#000000"}
	twitter     = Identity{Label: "Twitter", Icon: icon.Twitter, Accent: "#1da1f2"}
	facebook    = Identity{Label: "Facebook", Icon: icon.Facebook, Accent: "#1877f2"}
	vimeo       = Identity{Label: "Vimeo", Icon: icon.Vimeo, Accent: "#1ab7ea"}
	dailymotion = Identity{Label: "Dailymotion", Icon: icon.Dailymotion, Accent: "#0066cc"}

	// Unknown is returned for URLs no mapping entry matches.
	Unknown = Identity{Label: "Unknown", Icon: icon.Globe, Accent: "#64748b"}
)

// domains is scanned in order; aliases share the same Identity value.
var domains = []struct {
	substring string
	identity  Identity
}{
	{"youtube.com", youtube},
	{"youtu.be", youtube},
	{"instagram.com", instagram},
	{"tiktok.com", tiktok},
	{"twitter.com", twitter},
	{"x.com", twitter},
	{"facebook.com", facebook},
	{"vimeo.com", vimeo},
	{"dailymotion.com", dailymotion},
}

// Classify returns the identity of the first mapping entry whose domain occurs in url.
// The match is a case-sensitive substring test, so the mapping order matters.
func Classify(url string) Identity {
	for _, d := range domains {
		if strings.Contains(url, d.substring) {
			return d.identity
		}
	}
	return Unknown
}

// Known returns the distinct platform labels in mapping order.
func Known() []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, d := range domains {
		if _, ok := seen[d.identity.Label]; ok {
			continue
		}
		seen[d.identity.Label] = struct{}{}
		labels = append(labels, d.identity.Label)
	}
	return labels
}
