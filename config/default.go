package config

import (
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/provider/cobalt"
	"github.com/vidgrab/vidgrab/provider/instavideo"
	"github.com/vidgrab/vidgrab/provider/ytdlp"
)

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.ProvidersOrder, []string{cobalt.ID, instavideo.ID, ytdlp.ID}, "Providers to try, in priority order.\nRun \"vidgrab providers list\" to see the available ones")
	register(key.ProvidersTimeout, 15, "Seconds a single provider may take before the next one is tried")
	register(key.ProvidersCustom, true, "Try the Lua providers from the sources directory after the built-in ones")

	register(key.CobaltEndpoint, cobalt.Endpoint, "Endpoint of the cobalt provider")
	register(key.InstavideoEndpoint, instavideo.Endpoint, "Endpoint of the instavideo provider")
	register(key.YtdlpEndpoint, ytdlp.Endpoint, "Endpoint of the yt-dlp API provider")

	register(key.DeliverApp, "", "Application that opens download links.\nEmpty means the system default handler")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for new releases when showing help and version")
}
