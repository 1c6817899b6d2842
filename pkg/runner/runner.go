package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsmlab/automata/internal/logging"
	"github.com/fsmlab/automata/pkg/domain"
	"github.com/fsmlab/automata/pkg/ports"
)

// Runner executes validation runs against an automaton using provided IO.
// It owns the step loop and its pacing; the engine stays synchronous.
type Runner struct {
	// Handler is the IO strategy. Nil falls back to a silent handler.
	Handler IOHandler

	// Logger is used for internal debug logging. Nil means no-op.
	Logger *slog.Logger

	// Store is the persistence adapter for finished runs. Nil means
	// ephemeral runs.
	Store ports.RunStore

	// Delay is the pause between consecutive steps, for animated
	// presentation only. Zero runs the input back to back.
	Delay time.Duration

	// RunID overrides the generated ID used when persisting.
	RunID string
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hooks returns lifecycle hooks that forward every engine notification to
// the runner's IO handler. Pass them to automata.WithHooks at construction
// so the step loop and the notification stream stay decoupled.
func (r *Runner) Hooks() domain.LifecycleHooks {
	forward := func(ctx context.Context, base domain.EventBase) {
		if r.Handler == nil {
			return
		}
		if err := r.Handler.Notify(ctx, base); err != nil {
			r.Logger.Debug("notification dropped", "error", err)
		}
	}
	return domain.LifecycleHooks{
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			forward(ctx, e.EventBase)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			forward(ctx, e.EventBase)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			forward(ctx, e.EventBase)
		},
	}
}

// Run feeds the whole input through the automaton and returns the finished
// run record. The input is sanitized first; the loop halts on the first
// rejected symbol. Rejection and incompleteness are normal outcomes, not
// errors.
func (r *Runner) Run(ctx context.Context, a ports.Simulator, input string) (*domain.RunRecord, error) {
	clean, err := SanitizeInput(input)
	if err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	if err := a.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset failed: %w", err)
	}

	valid := true
	first := true
	for _, symbol := range clean {
		if !first {
			if err := r.pace(ctx); err != nil {
				return nil, err
			}
		}
		first = false

		res, err := a.Step(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("step failed: %w", err)
		}
		if !res.Valid {
			valid = false
			break
		}
	}

	record := &domain.RunRecord{
		ID:         r.runID(),
		Kind:       a.Kind(),
		Input:      clean,
		Outcome:    a.Outcome(valid),
		Conclusion: a.Conclusion(clean, valid),
		Steps:      a.History(),
		CreatedAt:  time.Now().UTC(),
	}
	if cur := a.Current(); cur != nil {
		record.FinalState = cur.ID
	}

	if r.Handler != nil {
		if err := r.Handler.Conclude(ctx, record); err != nil {
			return nil, fmt.Errorf("output error: %w", err)
		}
	}

	if r.Store != nil {
		if err := r.Store.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to persist run: %w", err)
		}
		r.Logger.Debug("run saved", "run_id", record.ID, "outcome", record.Outcome)
	}

	return record, nil
}

// pace waits the configured delay, honoring cancellation. The delay is a
// scheduling concern only and never changes the step sequence.
func (r *Runner) pace(ctx context.Context) error {
	if r.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) runID() string {
	if r.RunID != "" {
		return r.RunID
	}
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}
