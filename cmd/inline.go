package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/inline"
	"github.com/vidgrab/vidgrab/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("pick", "p", "", "Criteria for selecting renditions from the result")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Write the command output to this file")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "first", "last", "best", "audio"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline <url>",
	Short: "Resolve a link without the interactive interface",
	Long: `Resolve a link and print the direct download URLs, one per line.

Rendition pickers:
  all - every downloadable rendition (default)
  first - first rendition in the list
  last - last rendition in the list
  best - the highest video quality
  audio - audio-only renditions
  [number] - select rendition by index (starting from 1)
  [label] - select renditions by quality label, e.g. 720p

When every provider fails, the json output still carries the placeholder result
with "synthetic" set to true, while plain output exits with an error.`,
	Example: "  vidgrab inline -p best https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:      writer,
			Resolver: newResolver(),
			URL:      args[0],
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Picker:   picker,
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "record", "rendition", "model", "item", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
