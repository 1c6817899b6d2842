package runner

import (
	"context"

	"github.com/fsmlab/automata/pkg/domain"
)

// IOHandler defines the strategy for presenting a run to the user.
// This allows switching between colored terminal output, plain text for
// pipes, and silent operation in tests.
type IOHandler interface {
	// Notify presents one engine notification (reset, step or rejection).
	Notify(ctx context.Context, event domain.EventBase) error

	// Conclude presents the final verdict of a run.
	Conclude(ctx context.Context, record *domain.RunRecord) error

	// SystemOutput presents a meta-message (banners, status updates),
	// distinct from engine notifications.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms display content before output, e.g. markdown to
// ANSI. It keeps TUI rendering out of the core loop.
type ContentRenderer func(string) (string, error)
