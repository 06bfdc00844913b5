// Package util holds small helpers shared by the CLI and the renderers.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vidgrab/vidgrab/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var unsafeRune = regexp.MustCompile(`[^A-Za-z0-9]`)

// SanitizeFilename replaces every rune outside [A-Za-z0-9] with an underscore.
// Runs are not collapsed, so the result has as many runes as the input.
func SanitizeFilename(filename string) string {
	return unsafeRune.ReplaceAllString(filename, "_")
}

// Quantify formats count followed by the matching noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem is the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PrintErasable prints msg on the current line of stdout. The returned func blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of items, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) (max T) {
	for i, item := range items {
		if i == 0 || item > max {
			max = item
		}
	}
	return max
}

// Min returns the smallest of items, or the zero value when there are none.
func Min[T constraints.Ordered](items ...T) (min T) {
	for i, item := range items {
		if i == 0 || item < min {
			min = item
		}
	}
	return min
}

// Delete removes path through the filesystem backend, recursively for directories.
func Delete(path string) error {
	fs := filesystem.API()
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fs.Remove(path)
	}
	return fs.RemoveAll(path)
}
