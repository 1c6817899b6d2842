package ports

import (
	"context"

	"github.com/fsmlab/automata/pkg/domain"
)

// RunStore defines the interface for persisting finished simulation runs.
// Persistence is an audit/replay concern: engine correctness never depends
// on a store being configured.
type RunStore interface {
	// Save persists the run record under its ID.
	Save(ctx context.Context, record *domain.RunRecord) error

	// Load retrieves a run by ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes a run by ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored runs.
	List(ctx context.Context) ([]string, error)
}

// Simulator is the engine surface consumed by serving adapters (HTTP). The
// root automata.Automaton satisfies it.
type Simulator interface {
	Reset(ctx context.Context) error
	Step(ctx context.Context, symbol rune) (domain.StepResult, error)
	Conclusion(input string, valid bool) string
	Outcome(valid bool) domain.RunOutcome
	Grammar() string
	Kind() string
	Name() string
	States() []domain.State
	Transitions() []domain.Transition
	Current() *domain.State
	History() []domain.StepRecord
}
