/*
Package domain contains the core domain models for the Automata engine.

It defines the fundamental entities of a deterministic finite automaton, such as
States, Transitions and the symbol-matching rules, plus the records produced by
a simulation run. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: a node of the automaton (start flag, accepting flag, display label).
  - Transition: a rule to move between states, keyed by a SymbolRule.
  - StepRecord / StepResult: the outcome of consuming a single input symbol.
  - RunRecord: the audit trail of a whole validation run.
  - LifecycleHooks: observer callbacks for reset/step/reject notifications.
*/
package domain
