// Package resolver walks the provider chain for a URL and always produces a record.
package resolver

import (
	"context"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
	"time"

	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/synthetic"
)

// DefaultTimeout bounds a single provider attempt.
const DefaultTimeout = 15 * time.Second

// Resolver tries its sources sequentially in priority order. It holds no
// per-resolution state, so one value may serve concurrent resolutions.
type Resolver struct {
	sources []source.Source

	// Timeout bounds each attempt; DefaultTimeout is used when it is not positive.
	Timeout time.Duration

	// OnTransition, when set, observes every state change of a resolution.
	// It runs on the resolving goroutine.
	OnTransition func(Transition)
}

// New returns a resolver over sources, which are tried in the given order.
func New(sources []source.Source) *Resolver {
	return &Resolver{
		sources: sources,
		Timeout: DefaultTimeout,
	}
}

// Sources returns the chain in priority order.
func (r *Resolver) Sources() []source.Source {
	return r.sources
}

// Validate trims rawURL and checks it is an absolute URL with a scheme and a host.
func Validate(rawURL string) (*neturl.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, &ValidationError{Input: rawURL, Reason: "empty"}
	}

	parsed, err := neturl.Parse(trimmed)
	if err != nil {
		return nil, &ValidationError{Input: rawURL, Reason: "malformed", Err: err}
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ValidationError{Input: rawURL, Reason: "scheme and host are required"}
	}

	return parsed, nil
}

// Resolve returns the record of the first source that succeeds for rawURL.
// When every source fails, or ctx is cancelled, the synthetic record is returned
// with a nil error. The only error is a *ValidationError.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*source.Record, error) {
	r.emit(Transition{State: Idle, Index: -1})
	r.emit(Transition{State: Validating, Index: -1})

	if _, err := Validate(rawURL); err != nil {
		return nil, err
	}
	url := strings.TrimSpace(rawURL)

	for i, src := range r.sources {
		if ctx.Err() != nil {
			log.With(log.Fields{"url": url}).Warnf("resolution cancelled before %s", src.ID())
			break
		}

		r.emit(Transition{State: Trying, Index: i, Source: src.ID()})
		entry := log.With(log.Fields{"provider": src.ID(), "url": url})
		entry.Debugf("attempt %d/%d", i+1, len(r.sources))

		started := time.Now()
		outcome := r.attempt(ctx, src, url)

		if ctx.Err() != nil {
			entry.Warnf("resolution cancelled, discarding result")
			break
		}

		record, err := outcome.Get()
		if err != nil {
			entry.Warnf("failed after %s: %v", time.Since(started).Round(time.Millisecond), err)
			continue
		}

		if record.Provider == "" {
			record.Provider = src.ID()
		}

		entry.Infof("resolved %d renditions in %s", len(record.Renditions), time.Since(started).Round(time.Millisecond))
		r.emit(Transition{State: Succeeded, Index: i, Source: src.ID()})
		return record, nil
	}

	log.With(log.Fields{"url": url}).Warnf("no provider answered, using synthetic result")
	r.emit(Transition{State: Exhausted, Index: -1})

	record := synthetic.Generate(url)
	r.emit(Transition{State: Succeeded, Index: -1, Source: synthetic.ID})
	return record, nil
}

// attempt runs one source under its own deadline. Panics and empty records
// are converted into failures.
func (r *Resolver) attempt(ctx context.Context, src source.Source, url string) (outcome source.Outcome) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = source.Fail(src.ID(), fmt.Errorf("panic: %v", recovered))
		}
	}()

	outcome = src.Resolve(ctx, url)

	if record, err := outcome.Get(); err == nil && (record == nil || len(record.Renditions) == 0) {
		return source.Fail(src.ID(), source.ErrNoMedia)
	}

	if outcome.IsError() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return source.Fail(src.ID(), fmt.Errorf("timed out after %s: %w", timeout, ctx.Err()))
	}

	return outcome
}

func (r *Resolver) emit(t Transition) {
	if r.OnTransition != nil {
		r.OnTransition(t)
	}
}
