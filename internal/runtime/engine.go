package runtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsmlab/automata/pkg/domain"
)

// Engine is the core automaton stepper. It is domain-agnostic: the concrete
// state/transition tables and the symbol matcher come from a definition, and
// the engine only moves the current-state pointer and appends history.
//
// The tables are copied on construction and never mutated afterwards; all
// runtime mutation goes through Reset and Step.
type Engine struct {
	states      []domain.State
	transitions []domain.Transition
	matcher     domain.Matcher
	hooks       domain.LifecycleHooks

	byID    map[string]*domain.State
	current *domain.State
	history []domain.StepRecord
}

// NewEngine creates an engine over the given tables.
// A nil matcher falls back to domain.MatchSymbol.
func NewEngine(states []domain.State, transitions []domain.Transition, matcher domain.Matcher, hooks domain.LifecycleHooks) *Engine {
	e := &Engine{
		states:      append([]domain.State(nil), states...),
		transitions: append([]domain.Transition(nil), transitions...),
		matcher:     matcher,
		hooks:       hooks,
		byID:        make(map[string]*domain.State, len(states)),
	}
	if e.matcher == nil {
		e.matcher = domain.MatchSymbol
	}
	for i := range e.states {
		e.byID[e.states[i].ID] = &e.states[i]
	}
	return e
}

// Reset moves the engine to the unique start state and clears history.
// It fails if the definition declares no start state, or more than one;
// neither case is resolved silently.
func (e *Engine) Reset(ctx context.Context) error {
	var start *domain.State
	for i := range e.states {
		if !e.states[i].IsStart {
			continue
		}
		if start != nil {
			return fmt.Errorf("%w: %s and %s", domain.ErrDuplicateStartState, start.ID, e.states[i].ID)
		}
		start = &e.states[i]
	}
	if start == nil {
		return domain.ErrNoStartState
	}

	e.current = start
	e.history = nil

	if e.hooks.OnReset != nil {
		e.hooks.OnReset(ctx, &domain.ResetEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventReset,
				Severity:  domain.SeverityInfo,
				Message:   fmt.Sprintf("machine reset, current state is %q", start.Label),
			},
			StateID:    start.ID,
			StateLabel: start.Label,
		})
	}
	return nil
}

// Step consumes a single symbol. On a match it advances the current state,
// appends a StepRecord and returns it; on no match it leaves state and
// history untouched and returns a StepResult explaining the rejection.
// The only error condition is calling Step before Reset.
func (e *Engine) Step(ctx context.Context, symbol rune) (domain.StepResult, error) {
	if e.current == nil {
		return domain.StepResult{}, domain.ErrNotStarted
	}

	for _, t := range e.transitions {
		if t.From != e.current.ID || !e.matcher(t.Rule, symbol) {
			continue
		}
		dest, ok := e.byID[t.To]
		if !ok {
			// Dangling destination is a definition bug; treat as a dead end
			// rather than advancing into a state that does not exist.
			break
		}

		record := domain.StepRecord{
			From:   e.current.ID,
			To:     dest.ID,
			Symbol: string(symbol),
			Valid:  true,
		}
		e.current = dest
		e.history = append(e.history, record)

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: domain.EventBase{
					Timestamp: time.Now(),
					Type:      domain.EventStep,
					Severity:  domain.SeveritySuccess,
					Message:   fmt.Sprintf("read %q: %s -> %s", string(symbol), record.From, record.To),
				},
				From:   record.From,
				To:     record.To,
				Symbol: record.Symbol,
			})
		}
		return domain.StepResult{Valid: true, Record: &record}, nil
	}

	reason := e.rejectReason(symbol)
	if e.hooks.OnReject != nil {
		e.hooks.OnReject(ctx, &domain.RejectEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventReject,
				Severity:  domain.SeverityError,
				Message:   fmt.Sprintf("symbol %q rejected at %q: %s", string(symbol), e.current.Label, reason),
			},
			StateID: e.current.ID,
			Symbol:  string(symbol),
			Reason:  reason,
		})
	}
	return domain.StepResult{Valid: false, Reason: reason}, nil
}

// rejectReason composes the explanation for a failed step: a dead end when
// the current state has no outgoing transitions, otherwise the expected rules
// versus the symbol actually received.
func (e *Engine) rejectReason(symbol rune) string {
	outgoing := e.TransitionsFrom(e.current.ID)
	if len(outgoing) == 0 {
		return "dead end: no further transitions possible"
	}

	expected := make([]string, 0, len(outgoing))
	seen := make(map[string]bool, len(outgoing))
	for _, t := range outgoing {
		desc := describeRule(t.Rule)
		if !seen[desc] {
			seen[desc] = true
			expected = append(expected, desc)
		}
	}
	return fmt.Sprintf("expected %s, got %q", strings.Join(expected, " or "), string(symbol))
}

func describeRule(rule domain.SymbolRule) string {
	switch rule {
	case domain.RuleDigit:
		return "a digit"
	case domain.RuleAlpha:
		return "a letter"
	case domain.RuleAlphaNum:
		return "a letter or digit"
	default:
		return fmt.Sprintf("%q", string(rule))
	}
}

// States returns a copy of the ordered state table.
func (e *Engine) States() []domain.State {
	return append([]domain.State(nil), e.states...)
}

// Transitions returns a copy of the ordered transition table.
func (e *Engine) Transitions() []domain.Transition {
	return append([]domain.Transition(nil), e.transitions...)
}

// TransitionsFrom returns the transitions leaving the given state, in table
// order.
func (e *Engine) TransitionsFrom(stateID string) []domain.Transition {
	var out []domain.Transition
	for _, t := range e.transitions {
		if t.From == stateID {
			out = append(out, t)
		}
	}
	return out
}

// Current returns the state the engine is in, or nil before the first Reset.
func (e *Engine) Current() *domain.State {
	if e.current == nil {
		return nil
	}
	c := *e.current
	return &c
}

// History returns a copy of the step records of the current run.
func (e *Engine) History() []domain.StepRecord {
	return append([]domain.StepRecord(nil), e.history...)
}

// Lookup resolves a state by ID.
func (e *Engine) Lookup(stateID string) (*domain.State, bool) {
	s, ok := e.byID[stateID]
	if !ok {
		return nil, false
	}
	c := *s
	return &c, true
}
