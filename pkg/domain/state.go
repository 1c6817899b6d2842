package domain

// State represents a single node of an automaton.
// States are immutable after the automaton is constructed; only the engine's
// current-state pointer and history change at runtime.
type State struct {
	// ID is the identifier, unique within one automaton.
	ID string `json:"id" yaml:"id"`

	// Label is the human-readable display name (e.g. "local part").
	Label string `json:"label" yaml:"label"`

	// IsStart marks the unique entry state. Exactly one state per automaton
	// must carry this flag; the engine rejects the definition otherwise.
	IsStart bool `json:"is_start,omitempty" yaml:"start,omitempty"`

	// IsFinal marks an accepting state. Zero or more states may be final.
	IsFinal bool `json:"is_final,omitempty" yaml:"final,omitempty"`
}

// StepRecord captures one successful transition. Records are appended to the
// engine history for audit/replay only; correctness of subsequent steps never
// depends on them.
type StepRecord struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Symbol string `json:"symbol"`
	Valid  bool   `json:"valid"`
}

// StepResult is the outcome of consuming a single symbol.
// A rejection is a normal value, not an error: Valid is false, Record is nil
// and Reason carries the human-readable explanation.
type StepResult struct {
	Valid  bool        `json:"valid"`
	Record *StepRecord `json:"record,omitempty"`
	Reason string      `json:"reason,omitempty"`
}
