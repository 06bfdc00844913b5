package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/where"
)

type clearable struct {
	flag, short string
	what        string
	path        func() string
}

// temp has no shorthand, -t belongs to the root timeout flag.
var clearables = []clearable{
	{flag: "cache", short: "c", what: "cache directory", path: where.Cache},
	{flag: "temp", what: "temporary files", path: where.Temp},
	{flag: "logs", short: "l", what: "log files", path: where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, c := range clearables {
		clearCmd.Flags().BoolP(c.flag, c.short, false, "Remove the "+c.what)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached, temporary and log files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		chosen := lo.Filter(clearables, func(c clearable, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(c.flag))
		})

		if len(chosen) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, c := range chosen {
			erase := util.PrintErasable(fmt.Sprintf("%s Removing %s...", icon.Get(icon.Progress), c.what))
			err := util.Delete(c.path())
			erase()

			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s removed\n", icon.Get(icon.Success), util.Capitalize(c.what))
		}
	},
}
