// Package deliver hands a chosen rendition to the host, either by opening its
// link with the system handler or by saving it to disk.
package deliver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/network"
	"github.com/vidgrab/vidgrab/open"
	"github.com/vidgrab/vidgrab/source"
)

// ErrPlaceholder is wrapped when a placeholder rendition is delivered.
var ErrPlaceholder = errors.New("rendition is a placeholder")

// Error reports a delivery that did not happen. Callers should point the
// user to the preview link instead.
type Error struct {
	URL      string
	Filename string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("deliver %s: %v", e.Filename, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Preview returns the link the user can open by hand after err prevented a
// delivery. Placeholders have no preview.
func Preview(err error) (string, bool) {
	var derr *Error
	if !errors.As(err, &derr) || errors.Is(derr.Err, ErrPlaceholder) {
		return "", false
	}
	return derr.URL, derr.URL != ""
}

// launch is replaced in tests.
var launch = open.Start

// Deliver opens url with the application configured in deliver.app, or the
// system default handler. It never panics; every failure is an *Error.
func Deliver(url, filename string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &Error{URL: url, Filename: filename, Err: fmt.Errorf("panic: %v", recovered)}
		}
	}()

	if url == source.Placeholder || url == "" {
		return &Error{URL: url, Filename: filename, Err: ErrPlaceholder}
	}

	if err := launch(url, viper.GetString(key.DeliverApp)); err != nil {
		log.Warnf("deliver %s: %v", filename, err)
		return &Error{URL: url, Filename: filename, Err: err}
	}

	log.Infof("delivered %s to the host", filename)
	return nil
}

// Save downloads url into dir/filename and returns the written path.
// progress, when non-nil, is called with the number of bytes written so far
// and the expected total, which is -1 when unknown.
func Save(ctx context.Context, url, dir, filename string, progress func(written, total int64)) (string, error) {
	if url == source.Placeholder || url == "" {
		return "", &Error{URL: url, Filename: filename, Err: ErrPlaceholder}
	}

	req, err := network.NewRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{URL: url, Filename: filename, Err: err}
	}
	req.Header.Set("Accept", "*/*")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", &Error{URL: url, Filename: filename, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{URL: url, Filename: filename, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	path := filepath.Join(dir, filename)
	err = filesystem.Replace(path, func(w io.Writer) error {
		if progress != nil {
			w = &counter{w: w, total: resp.ContentLength, report: progress}
		}
		_, err := io.Copy(w, resp.Body)
		return err
	})
	if err != nil {
		return "", &Error{URL: url, Filename: filename, Err: err}
	}

	log.Infof("saved %s", path)
	return path, nil
}

type counter struct {
	w       io.Writer
	written int64
	total   int64
	report  func(written, total int64)
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += int64(n)
	c.report(c.written, c.total)
	return n, err
}
