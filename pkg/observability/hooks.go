package observability

import (
	"context"
	"log/slog"

	"github.com/fsmlab/automata/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that forward every notification to a
// structured logger.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			logger.Info("reset", "state", e.StateID, "label", e.StateLabel)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Info("step", "symbol", e.Symbol, "from", e.From, "to", e.To)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.Warn("reject", "symbol", e.Symbol, "state", e.StateID, "reason", e.Reason)
		},
	}
}

// MergeHooks composes hook sets; every non-nil callback of every set fires,
// in argument order.
func MergeHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			for _, h := range sets {
				if h.OnReset != nil {
					h.OnReset(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range sets {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			for _, h := range sets {
				if h.OnReject != nil {
					h.OnReject(ctx, e)
				}
			}
		},
	}
}
