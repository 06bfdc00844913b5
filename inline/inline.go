// Package inline implements the non-interactive, scriptable resolution mode.
package inline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/view"
)

// Output is the JSON document written in json mode.
type Output struct {
	URL       string         `json:"url"`
	Synthetic bool           `json:"synthetic"`
	Record    *source.Record `json:"record"`
	View      view.Model     `json:"view"`
	// Selected holds the items left after the picker ran.
	Selected []view.Item `json:"selected"`
}

// ErrNothingSelected is returned in plain mode when the picker leaves no actionable item.
var ErrNothingSelected = errors.New("no rendition matched the picker")

// Run resolves options.URL and writes the result to options.Out.
// Plain mode prints one direct URL per line.
func Run(ctx context.Context, options *Options) error {
	if options.Resolver == nil {
		return errors.New("resolver not set")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	record, err := options.Resolver.Resolve(ctx, options.URL)
	if err != nil {
		return err
	}

	model := view.Map(record, options.URL)
	selected := model.Actionable()
	if picker, ok := options.Picker.Get(); ok {
		selected = picker(selected)
	}

	log.With(log.Fields{
		"url":      options.URL,
		"provider": record.Provider,
		"selected": len(selected),
	}).Infof("inline resolution finished")

	if options.Json {
		return writeJson(options.Out, &Output{
			URL:       options.URL,
			Synthetic: model.Synthetic,
			Record:    record,
			View:      model,
			Selected:  selected,
		})
	}

	if len(selected) == 0 {
		if model.Synthetic {
			return fmt.Errorf("%w: every provider failed for %s", ErrNothingSelected, options.URL)
		}
		return ErrNothingSelected
	}

	for _, item := range selected {
		if _, err := fmt.Fprintln(options.Out, item.URL); err != nil {
			return err
		}
	}

	return nil
}

func writeJson(out io.Writer, output *Output) error {
	if output.Selected == nil {
		output.Selected = []view.Item{}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
