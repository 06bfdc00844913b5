package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidgrab/vidgrab/auth"
	"github.com/vidgrab/vidgrab/color"
	"github.com/vidgrab/vidgrab/icon"
	"github.com/vidgrab/vidgrab/provider/cobalt"
	"github.com/vidgrab/vidgrab/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider API keys stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authCobaltCmd)

	authCobaltCmd.Flags().StringP("key", "k", "", "API key to store; prompted for when omitted")
	authCobaltCmd.Flags().BoolP("remove", "r", false, "Remove the stored key")
	authCobaltCmd.MarkFlagsMutuallyExclusive("key", "remove")
}

var authCobaltCmd = &cobra.Command{
	Use:   cobalt.ID,
	Short: "Store the API key sent to the cobalt instance",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("remove")) {
			handleErr(auth.DeleteKey(cobalt.ID))
			fmt.Printf("%s removed %s key\n", style.Fg(color.Green)(icon.Get(icon.Success)), cobalt.Name)
			return
		}

		apiKey := lo.Must(cmd.Flags().GetString("key"))
		if apiKey == "" {
			err := survey.AskOne(&survey.Password{
				Message: cobalt.Name + " API key:",
			}, &apiKey, survey.WithValidator(func(ans any) error {
				if s, ok := ans.(string); ok && strings.TrimSpace(s) != "" {
					return nil
				}
				return errors.New("key is empty")
			}))
			handleErr(err)
		}

		handleErr(auth.SetKey(cobalt.ID, strings.TrimSpace(apiKey)))
		fmt.Printf("%s stored %s key\n", style.Fg(color.Green)(icon.Get(icon.Success)), cobalt.Name)
	},
}
