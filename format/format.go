// Package format renders byte counts and durations as human-readable strings.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

var units = []string{"B", "KB", "MB", "GB"}

// Size renders bytes with one fractional digit in the largest unit (up to GB) that keeps the value ≥ 1.
// An absent size renders as "Unknown size"; zero is a known size.
func Size(bytes mo.Option[int64]) string {
	b, ok := bytes.Get()
	if !ok {
		return "Unknown size"
	}

	size := float64(b)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", size, units[unit])
}

// UnknownDuration is what Duration renders when there is nothing to show.
const UnknownDuration = "Unknown"

// Duration renders seconds as m:ss. Minutes are not wrapped into hours.
// Absent, zero and negative values render as "Unknown".
func Duration(seconds mo.Option[int64]) string {
	s, ok := seconds.Get()
	if !ok || s <= 0 {
		return UnknownDuration
	}

	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// DurationText formats a provider duration that may be raw seconds or already formatted.
// Numeric text is formatted once; anything else is passed through untouched.
func DurationText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Duration(mo.None[int64]())
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Duration(mo.Some(n))
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Duration(mo.Some(int64(f)))
	}

	return raw
}

// Count renders n with comma thousands separators.
func Count(n int64) string {
	if n < 0 {
		return "-" + Count(-n)
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
