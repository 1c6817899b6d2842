package definitions

import (
	"fmt"
	"sort"

	"github.com/fsmlab/automata/pkg/domain"
)

// Built-in definition kinds.
const (
	KindEmail        = "email"
	KindDivisibleBy3 = "div3"
)

// Definition bundles everything the engine needs to simulate one automaton:
// the tables, the optional matcher override, and the diagnostic function.
type Definition struct {
	// Kind is the dispatch tag (e.g. "email").
	Kind string
	// Name is the human-readable title shown by frontends.
	Name string
	// Grammar is a fixed, display-only description of the production rules.
	// It has no semantic coupling to the simulation.
	Grammar string

	States      []domain.State
	Transitions []domain.Transition

	// Matcher overrides domain.MatchSymbol for this automaton. Nil means the
	// default predicate. Overrides must delegate to domain.MatchSymbol for
	// symbols they do not special-case.
	Matcher domain.Matcher

	// Conclude explains the outcome of a whole run: the original input, the
	// validity flag of the step loop, and the state the automaton ended in.
	Conclude func(input string, valid bool, final *domain.State) string
}

var builders = map[string]func() *Definition{
	KindEmail:        Email,
	KindDivisibleBy3: DivisibleBy3,
}

// ForKind returns a fresh definition for the given kind tag.
func ForKind(kind string) (*Definition, error) {
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	return build(), nil
}

// Kinds lists the registered definition kinds in stable order.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Verify checks the structural invariants a definition must hold before it is
// handed to the engine: unique state IDs, exactly one start state, transition
// endpoints that exist, and determinism (at most one matching transition per
// state for every printable ASCII symbol).
//
// Determinism is a definition-time property: the engine does not enforce it
// at runtime, it just fires the first match.
func Verify(def *Definition) error {
	ids := make(map[string]bool, len(def.States))
	starts := 0
	for _, s := range def.States {
		if s.ID == "" {
			return fmt.Errorf("definition %q: state with empty ID", def.Kind)
		}
		if ids[s.ID] {
			return fmt.Errorf("definition %q: duplicate state ID %q", def.Kind, s.ID)
		}
		ids[s.ID] = true
		if s.IsStart {
			starts++
		}
	}
	if starts == 0 {
		return fmt.Errorf("definition %q: %w", def.Kind, domain.ErrNoStartState)
	}
	if starts > 1 {
		return fmt.Errorf("definition %q: %w", def.Kind, domain.ErrDuplicateStartState)
	}

	for _, t := range def.Transitions {
		if !ids[t.From] {
			return fmt.Errorf("definition %q: transition from unknown state %q", def.Kind, t.From)
		}
		if !ids[t.To] {
			return fmt.Errorf("definition %q: transition to unknown state %q", def.Kind, t.To)
		}
	}

	matcher := def.Matcher
	if matcher == nil {
		matcher = domain.MatchSymbol
	}
	for _, s := range def.States {
		for sym := rune(0x20); sym <= 0x7e; sym++ {
			var matched *domain.Transition
			for i, t := range def.Transitions {
				if t.From != s.ID || !matcher(t.Rule, sym) {
					continue
				}
				if matched != nil {
					return fmt.Errorf("definition %q: state %q is nondeterministic for symbol %q (rules %q and %q)",
						def.Kind, s.ID, string(sym), matched.Rule, t.Rule)
				}
				matched = &def.Transitions[i]
			}
		}
	}
	return nil
}
