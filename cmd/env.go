package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/config"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/where"
	"golang.org/x/exp/slices"
)

// envNames lists every variable vidgrab reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables vidgrab reads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			value, set := os.LookupEnv(env)
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			shown := style.Fg(color.Red)("unset")
			if set {
				shown = style.Fg(color.Green)(value)
			}
			cmd.Printf("%s=%s\n", name(env), shown)
		}
	},
}
