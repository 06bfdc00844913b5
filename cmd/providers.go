package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/auth"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/provider"
	"github.com/vidgrab/vidgrab/style"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/where"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

var providersCmd = &cobra.Command{
	Use:     "providers",
	Aliases: []string{"sources"},
	Short:   "Manage built-in and custom resolution providers",
}

func init() {
	providersCmd.AddCommand(providersListCmd)

	providersListCmd.Flags().BoolP("raw", "r", false, "Suppress headers in the output")
	providersListCmd.Flags().BoolP("custom", "c", false, "Display only custom Lua providers")
	providersListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in providers")

	providersListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	providersListCmd.SetOut(os.Stdout)
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered provider",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				cmd.Println(p.ID)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	providersCmd.AddCommand(providersInfoCmd)
	providersInfoCmd.SetOut(os.Stdout)
}

var providersInfoCmd = &cobra.Command{
	Use:               "info <name>",
	Short:             "Show where a provider points and whether it is in the chain",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProviders,
	Run: func(cmd *cobra.Command, args []string) {
		p, ok := provider.Get(args[0])
		if !ok {
			similar := provider.Find(args[0])
			if len(similar) == 0 {
				handleErr(fmt.Errorf("unknown provider %s", args[0]))
			}
			p = similar[0]
		}

		order := viper.GetStringSlice(key.ProvidersOrder)
		position := lo.IndexOf(lo.Map(order, func(name string, _ int) string {
			return strings.ToLower(name)
		}), strings.ToLower(p.ID))

		var chain string
		switch {
		case position >= 0:
			chain = fmt.Sprintf("position %d", position+1)
		case p.IsCustom && viper.GetBool(key.ProvidersCustom):
			chain = "after the built-in providers"
		default:
			chain = "not used"
		}

		kind := lo.Ternary(p.IsCustom, "custom", "builtin")
		_, hasKey := auth.Key(p.ID)

		label := style.Fg(color.Blue)
		cmd.Println(style.New().Bold(true).Foreground(color.Purple).Render(p.Name))
		cmd.Printf("%s     %s\n", label("ID:"), p.ID)
		cmd.Printf("%s   %s\n", label("Kind:"), kind)
		cmd.Printf("%s  %s\n", label("Chain:"), chain)
		cmd.Printf("%s %s\n", label(lo.Ternary(p.IsCustom, "Script:", "Target:")), p.Endpoint)
		if !p.IsCustom {
			cmd.Printf("%s    %s\n", label("Key:"), lo.Ternary(hasKey, style.Fg(color.Green)("set"), style.Faint("unset")))
		}
	},
}

func init() {
	providersCmd.AddCommand(providersRemoveCmd)

	providersRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the custom provider(s) to uninstall")
	lo.Must0(providersRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		customs, err := provider.CustomProviders()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.Map(customs, func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var providersRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Uninstall custom Lua providers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	providersCmd.AddCommand(providersInstallCmd)
}

var providersInstallCmd = &cobra.Command{
	Use:     "install <url>",
	Short:   "Download a Lua provider script into the sources directory",
	Example: "  vidgrab providers install https://example.com/scripts/myhost.lua",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Progress), args[0]))
		dest, changed, err := provider.Install(context.Background(), args[0])
		erase()
		handleErr(err)

		if !changed {
			fmt.Printf("%s %s is already up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(util.FileStem(dest)))
			return
		}
		fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(dest))
	},
}

func init() {
	providersCmd.AddCommand(providersGenCmd)

	providersGenCmd.Flags().StringP("name", "n", "", "The name of the new provider")
	providersGenCmd.Flags().StringP("url", "u", "", "The site the provider resolves links for")

	lo.Must0(providersGenCmd.MarkFlagRequired("name"))
	lo.Must0(providersGenCmd.MarkFlagRequired("url"))
}

var providersGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua provider script",
	Long:  `Generate a boilerplate Lua provider script with the entry point and metadata header.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name           string
			URL            string
			ResolveMediaFn string
			Author         string
		}{
			Name:           lo.Must(cmd.Flags().GetString("name")),
			URL:            lo.Must(cmd.Flags().GetString("url")),
			ResolveMediaFn: constant.ResolveMediaFn,
			Author:         author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}
