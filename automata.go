package automata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsmlab/automata/internal/logging"
	"github.com/fsmlab/automata/internal/runtime"
	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
)

// Automaton is the high-level entry point of the library: one definition
// bound to one engine instance. Instances are fully independent; a single
// instance is not safe for concurrent use, mirroring the synchronous,
// single-threaded execution model of a simulation run.
type Automaton struct {
	def    *definitions.Definition
	engine *runtime.Engine
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring an Automaton.
type Option func(*Automaton)

// WithHooks registers observability callbacks fired on reset, successful
// steps and rejections.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Automaton) {
		a.hooks = hooks
	}
}

// WithLogger injects a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		a.logger = logger
	}
}

// Construct builds an automaton for a registered definition kind.
func Construct(kind string, opts ...Option) (*Automaton, error) {
	def, err := definitions.ForKind(kind)
	if err != nil {
		return nil, err
	}
	return New(def, opts...)
}

// New builds an automaton from an explicit definition, verifying its
// structural invariants first. Use this for definitions loaded from files or
// built programmatically.
func New(def *definitions.Definition, opts ...Option) (*Automaton, error) {
	if def == nil {
		return nil, fmt.Errorf("definition must not be nil")
	}
	if err := definitions.Verify(def); err != nil {
		return nil, err
	}

	a := &Automaton{
		def:    def,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.engine = runtime.NewEngine(def.States, def.Transitions, def.Matcher, a.hooks)
	return a, nil
}

// Reset moves the automaton to its start state and clears the step history.
// It may be called any number of times without reconstructing the automaton.
func (a *Automaton) Reset(ctx context.Context) error {
	if err := a.engine.Reset(ctx); err != nil {
		return err
	}
	a.logger.Debug("automaton reset", "kind", a.def.Kind, "state", a.engine.Current().ID)
	return nil
}

// Step consumes one input symbol. See runtime.Engine.Step for semantics.
func (a *Automaton) Step(ctx context.Context, symbol rune) (domain.StepResult, error) {
	res, err := a.engine.Step(ctx, symbol)
	if err != nil {
		return res, err
	}
	if !res.Valid {
		a.logger.Debug("symbol rejected", "kind", a.def.Kind, "symbol", string(symbol), "reason", res.Reason)
	}
	return res, nil
}

// Conclusion produces the definition's natural-language verdict for the run:
// the full original input, whether every symbol was consumed without a
// rejection, and the state the automaton ended in.
func (a *Automaton) Conclusion(input string, valid bool) string {
	return a.def.Conclude(input, valid, a.engine.Current())
}

// Outcome classifies the finished run from the validity flag and the current
// state.
func (a *Automaton) Outcome(valid bool) domain.RunOutcome {
	if !valid {
		return domain.OutcomeRejected
	}
	if cur := a.engine.Current(); cur != nil && cur.IsFinal {
		return domain.OutcomeAccepted
	}
	return domain.OutcomeIncomplete
}

// Grammar returns the fixed, display-only description of the automaton's
// production rules.
func (a *Automaton) Grammar() string {
	return a.def.Grammar
}

// Kind returns the definition's dispatch tag.
func (a *Automaton) Kind() string {
	return a.def.Kind
}

// Name returns the definition's human-readable title.
func (a *Automaton) Name() string {
	return a.def.Name
}

// States returns the ordered state table.
func (a *Automaton) States() []domain.State {
	return a.engine.States()
}

// Transitions returns the ordered transition table.
func (a *Automaton) Transitions() []domain.Transition {
	return a.engine.Transitions()
}

// Current returns the state the automaton is in, or nil before the first
// Reset.
func (a *Automaton) Current() *domain.State {
	return a.engine.Current()
}

// History returns the step records of the current run.
func (a *Automaton) History() []domain.StepRecord {
	return a.engine.History()
}
