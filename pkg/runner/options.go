package runner

import (
	"log/slog"
	"time"

	"github.com/fsmlab/automata/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures the IO strategy.
func WithHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithStore configures the RunStore for persistence.
func WithStore(store ports.RunStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithDelay configures the animation pause between steps.
func WithDelay(delay time.Duration) Option {
	return func(r *Runner) {
		r.Delay = delay
	}
}

// WithRunID pins the ID used when persisting runs.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}
