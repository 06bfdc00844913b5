// Package auth persists provider API keys in the system keyring.
package auth

import (
	"errors"

	"github.com/vidgrab/vidgrab/constant"
	"github.com/zalando/go-keyring"
)

const service = constant.Vidgrab + "-providers"

// SetKey persists the API key of a resolution provider.
func SetKey(provider, key string) error {
	if key == "" {
		return errors.New("empty api key")
	}
	return keyring.Set(service, provider, key)
}

// Key returns the stored API key of a provider.
// A missing entry or an unavailable keyring both report ok == false.
func Key(provider string) (key string, ok bool) {
	key, err := keyring.Get(service, provider)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

// DeleteKey removes the API key of a provider. Deleting a missing key is not an error.
func DeleteKey(provider string) error {
	err := keyring.Delete(service, provider)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
