// Package cmd implements the command-line interface for vidgrab.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/platform"
	"github.com/vidgrab/vidgrab/provider"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/tui"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/version"
	"github.com/vidgrab/vidgrab/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("provider", "P", []string{}, "Providers to try, in priority order")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", completionProviders))
	lo.Must0(viper.BindPFlag(key.ProvidersOrder, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().IntP("timeout", "t", 0, "Seconds a single provider may take")
	lo.Must0(viper.BindPFlag(key.ProvidersTimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background(), cmd.OutOrStdout())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd is the entry point of vidgrab.
var rootCmd = &cobra.Command{
	Use:   constant.Vidgrab + " [url]",
	Short: "Resolve video links into direct downloads",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve video links into direct downloads") + "\n\n" +
		"Recognized platforms: " + strings.Join(platform.Known(), ", ") + ".\n" +
		"Links from other sites are tried as well.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{}
		if len(args) == 1 {
			options.URL = args[0]
		}

		handleErr(tui.Run(newResolver(), &options))
	},
}

// Execute builds the command tree and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newResolver builds a resolver over the configured provider chain.
func newResolver() *resolver.Resolver {
	sources, err := provider.Chain()
	handleErr(err)

	r := resolver.New(sources)
	if seconds := viper.GetInt(key.ProvidersTimeout); seconds > 0 {
		r.Timeout = time.Duration(seconds) * time.Second
	}

	log.Debugf("provider chain has %d sources, timeout %s", len(sources), r.Timeout)
	return r
}

func completionProviders(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
