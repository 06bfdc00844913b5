package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/deliver"
	"github.com/vidgrab/vidgrab/format"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/inline"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/render"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/view"
)

const progressInterval = 200 * time.Millisecond

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringP("pick", "p", "", "Pick renditions without prompting (see \"vidgrab inline --help\")")
	getCmd.Flags().StringP("save", "s", "", "Download into this directory instead of opening the link")

	lo.Must0(getCmd.MarkFlagDirname("save"))
}

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Resolve a link, pick a rendition and download it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		r := newResolver()

		erase := func() {}
		r.OnTransition = func(t resolver.Transition) {
			if t.State != resolver.Trying {
				return
			}
			erase()
			erase = util.PrintErasable(fmt.Sprintf(
				"%s Trying %s (%d/%d)...",
				icon.Get(icon.Progress), t.Source, t.Index+1, len(r.Sources()),
			))
		}

		record, err := r.Resolve(context.Background(), url)
		erase()
		handleErr(err)

		model := view.Map(record, url)
		handleErr(render.Model(cmd.OutOrStdout(), model, render.Width()))

		actionable := model.Actionable()
		if len(actionable) == 0 {
			handleErr(errors.New("nothing to download"))
		}

		var chosen []view.Item
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			picker, err := inline.ParsePicker(pick)
			handleErr(err)
			chosen = picker(actionable)
		} else {
			item, err := prompt(actionable)
			handleErr(err)
			chosen = []view.Item{item}
		}

		if len(chosen) == 0 {
			handleErr(inline.ErrNothingSelected)
		}

		dir := lo.Must(cmd.Flags().GetString("save"))
		for _, item := range chosen {
			if dir == "" {
				handleErr(handOff(cmd.OutOrStdout(), item))
				continue
			}

			path, err := save(item, dir)
			handleErr(err)
			cmd.Printf("%s saved %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
		}
	},
}

// deliverItem is replaced in tests.
var deliverItem = deliver.Deliver

// handOff opens item on the host. When the host cannot take it, the
// rendition link is printed so the user can open it by hand.
func handOff(w io.Writer, item view.Item) error {
	err := deliverItem(item.URL, item.Filename)
	if err == nil {
		fmt.Fprintf(w, "%s opened %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), item.Filename)
		return nil
	}

	preview, ok := deliver.Preview(err)
	if !ok {
		return err
	}

	log.Warnf("%v, falling back to the preview link", err)
	fmt.Fprintf(
		w,
		"%s could not open %s, use the preview link instead:\n%s\n",
		style.Fg(color.Yellow)(icon.Get(icon.Warn)),
		item.Filename,
		preview,
	)
	return nil
}

func prompt(items []view.Item) (view.Item, error) {
	options := lo.Map(items, func(item view.Item, _ int) string {
		return fmt.Sprintf("%d. %s %s %s", item.Index, item.Class.Label, item.Format, item.Size)
	})

	var index int
	err := survey.AskOne(&survey.Select{
		Message: "Pick a rendition",
		Options: options,
	}, &index)
	if err != nil {
		return view.Item{}, err
	}

	return items[index], nil
}

func save(item view.Item, dir string) (string, error) {
	var (
		erase = func() {}
		last  time.Time
	)
	defer func() { erase() }()

	return deliver.Save(context.Background(), item.URL, dir, item.Filename, func(written, total int64) {
		if time.Since(last) < progressInterval {
			return
		}
		last = time.Now()

		progress := format.Size(mo.Some(written))
		if total > 0 {
			progress += " / " + format.Size(mo.Some(total))
		}

		erase()
		erase = util.PrintErasable(fmt.Sprintf("%s %s %s", icon.Get(icon.Download), item.Filename, progress))
	})
}
