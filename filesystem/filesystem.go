// Package filesystem holds the afero backend every package reads and writes through.
// Tests swap it for an in-memory one.
package filesystem

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

func API() afero.Afero {
	return backend
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// PartialSuffix marks files that are still being written.
const PartialSuffix = ".part"

// Replace writes path through write into a sibling partial file and renames
// it into place once write succeeds. On failure the partial file is removed
// and any previous content of path is left alone.
func Replace(path string, write func(w io.Writer) error) error {
	fs := API()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	partial := path + PartialSuffix
	file, err := fs.Create(partial)
	if err != nil {
		return err
	}

	if err := errors.Join(write(file), file.Close()); err != nil {
		_ = fs.Remove(partial)
		return err
	}

	if err := fs.Rename(partial, path); err != nil {
		_ = fs.Remove(partial)
		return err
	}
	return nil
}
