package source

import (
	"errors"
	"fmt"
)

// ErrNoMedia is reported by providers whose response lacks their success indicator.
var ErrNoMedia = errors.New("no media in response")

// ProviderError describes a transport, decoding or logical failure of one provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
