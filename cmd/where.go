package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/where"
)

type location struct {
	flag, short string
	path        func() string
	// internal locations are printed only on request
	internal bool
}

var locations = []location{
	{flag: "config", short: "c", path: where.Config},
	{flag: "sources", short: "s", path: where.Sources},
	{flag: "logs", short: "l", path: where.Logs},
	{flag: "cache", path: where.Cache, internal: true},
	{flag: "temp", path: where.Temp, internal: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := whereCmd.Flags()
	for _, l := range locations {
		flags.BoolP(l.flag, l.short, false, "Print the "+l.flag+" directory")
		if l.internal {
			lo.Must0(flags.MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the directories vidgrab reads and writes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		title := style.New().Bold(true).Foreground(color.HiPurple).Render
		public := lo.Reject(locations, func(l location, _ int) bool { return l.internal })

		for i, l := range public {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(title(util.Capitalize(l.flag)), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
