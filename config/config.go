// Package config registers every setting with its default and description, and
// loads the user's vidgrab.toml through viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/where"
)

// EnvKeyReplacer maps config keys to the suffix of their environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrUnknownKey is wrapped by Parse for keys that are not registered.
var ErrUnknownKey = errors.New("unknown config key")

// Setup registers defaults and environment bindings, then reads the config
// file if there is one. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Vidgrab)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vidgrab)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Path is where Write stores the config file.
func Path() string {
	return filepath.Join(where.Config(), constant.Vidgrab+".toml")
}

// Write persists the current settings, creating the file when needed.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Parse converts raw command-line values into the type of the default of key.
func Parse(key string, raw []string) (any, error) {
	field, ok := Default[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", key)
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", key, raw[0])
		}
		return b, nil
	case []string:
		var values []string
		for _, r := range raw {
			for _, v := range strings.Split(r, ",") {
				if v = strings.TrimSpace(v); v != "" {
					values = append(values, v)
				}
			}
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %T", key, field.Value)
	}
}
