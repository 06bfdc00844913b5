package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the bare version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		rows := []lo.Tuple2[string, string]{
			lo.T2("Version", constant.Version),
			lo.T2("Revision", constant.Revision),
			lo.T2("Built at", strings.TrimSpace(constant.BuiltAt)),
			lo.T2("Built by", constant.BuiltBy),
			lo.T2("Platform", runtime.GOOS+"/"+runtime.GOARCH),
		}

		width := lo.Max(lo.Map(rows, func(r lo.Tuple2[string, string], _ int) int { return len(r.A) }))

		cmd.Println(style.Fg(color.Purple)("▇▇▇ " + constant.Vidgrab))
		cmd.Println()
		for _, r := range rows {
			label := fmt.Sprintf("%-*s", width, r.A)
			cmd.Printf("  %s  %s\n", style.Faint(label), style.Bold(r.B))
		}

		version.Notify(context.Background(), cmd.OutOrStdout())
	},
}
