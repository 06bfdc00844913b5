// Package where locates the directories vidgrab keeps its files in. Every function creates its directory on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/filesystem"
)

// EnvConfigPath overrides Config when set.
const EnvConfigPath = "VIDGRAB_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the user config directory, e.g. ~/.config/vidgrab.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.Vidgrab))
}

func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Vidgrab))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Sources holds the Lua providers.
func Sources() string {
	return mkdir(filepath.Join(Config(), "sources"))
}


// Temp is wiped by "vidgrab clear --temp" and on every help invocation.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Vidgrab))
}
