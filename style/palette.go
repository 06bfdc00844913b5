package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidgrab/vidgrab/rendition"
)

// Palette used by the result renderer and the TUI.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Teal     = lipgloss.Color("#94e2d5")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay
	BorderColor  = Surface
)

var tierColors = map[rendition.Tier]lipgloss.Color{
	rendition.Tier4K:    Mauve,
	rendition.Tier1080p: Peach,
	rendition.Tier720p:  Green,
	rendition.Tier480p:  Sapphire,
	rendition.Tier360p:  Overlay,
	rendition.TierAudio: Teal,
}

// TierColor returns the badge color of a rendition tier.
func TierColor(tier rendition.Tier) lipgloss.Color {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return Overlay
}

// Badge renders s as a padded tag in the color of tier.
func Badge(tier rendition.Tier) func(string) string {
	return Tag(lipgloss.Color("#1e1e2e"), TierColor(tier))
}

// Accent renders s as a tag on the platform accent color.
func Accent(hex string) func(string) string {
	return Tag(lipgloss.Color("#ffffff"), lipgloss.Color(hex))
}
