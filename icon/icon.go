// Package icon renders UI symbols in the variant chosen by the icons.variant setting:
// emoji, nerd-font glyphs, plain ASCII, kaomoji or colored squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values icons.variant accepts.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji, nerd, plain, kaomoji, squares string
}

func (d *iconDef) Get() string {
	return map[string]string{
		emoji:   d.emoji,
		nerd:    d.nerd,
		plain:   d.plain,
		kaomoji: d.kaomoji,
		squares: d.squares,
	}[viper.GetString(key.IconsVariant)]
}

// Get renders i, or returns an empty string when either i or the configured variant is unknown.
func Get(i Icon) string {
	if def, ok := icons[i]; ok {
		return def.Get()
	}
	return ""
}
