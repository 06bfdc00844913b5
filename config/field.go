package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/style"
)

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Vidgrab + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	return fmt.Sprintf("%T", f.Value)
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

// Pretty renders the field with its current value for the terminal.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)

	var b strings.Builder
	b.WriteString(style.Faint(f.Description) + "\n")
	fmt.Fprintf(&b, "%s     %s\n", label("Key:"), style.Fg(color.Purple)(f.Key))
	fmt.Fprintf(&b, "%s     %s\n", label("Env:"), f.Env())
	fmt.Fprintf(&b, "%s   %s\n", label("Value:"), highlight(viper.Get(f.Key)))
	fmt.Fprintf(&b, "%s %s\n", label("Default:"), highlight(f.Value))
	fmt.Fprintf(&b, "%s    %s", label("Type:"), f.typeName())
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return style.Fg(lo.Ternary(value, color.Green, color.Red))(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}

// Keys returns every registered key in order.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

// Closest returns the registered key with the smallest edit distance to key.
func Closest(key string) string {
	return lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
}
