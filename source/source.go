// Package source defines the canonical media model and the adapter contract every resolution provider implements.
package source

import (
	"context"

	"github.com/samber/mo"
)

// Outcome is the tagged result of a single provider attempt: mo.Ok with a record, or mo.Err with the reason.
type Outcome = mo.Result[*Record]

// Source is a resolution provider that can answer "what renditions exist for this URL".
type Source interface {
	// Name returns the human-readable provider name.
	Name() string

	// ID returns the unique identifier used in configuration and logs.
	ID() string

	// Resolve issues the provider request for url and normalizes the answer.
	// Implementations never panic and report every fault through the returned Outcome.
	Resolve(ctx context.Context, url string) Outcome
}

// Ok wraps a record into a successful outcome.
func Ok(record *Record) Outcome {
	return mo.Ok(record)
}

// Fail wraps an error raised by provider into a failed outcome.
func Fail(provider string, err error) Outcome {
	return mo.Err[*Record](&ProviderError{Provider: provider, Err: err})
}
