package resolver

import "fmt"

// ValidationError is returned for input that is not an absolute URL.
// No provider is contacted when it occurs.
type ValidationError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid url %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid url %q: %s", e.Input, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
