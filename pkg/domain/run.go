package domain

import "time"

// RunOutcome is the terminal classification of one validation run.
type RunOutcome string

const (
	// OutcomeAccepted: every symbol consumed and the automaton stopped in an
	// accepting state.
	OutcomeAccepted RunOutcome = "accepted"
	// OutcomeRejected: a symbol found no matching transition; the run halted
	// at that point.
	OutcomeRejected RunOutcome = "rejected"
	// OutcomeIncomplete: every symbol consumed but the final state is not
	// accepting.
	OutcomeIncomplete RunOutcome = "incomplete"
)

// RunRecord is the persisted result of one run: what was fed in, where the
// automaton stopped, and the natural-language conclusion.
type RunRecord struct {
	ID         string       `json:"id"`
	Kind       string       `json:"kind"`
	Input      string       `json:"input"`
	Outcome    RunOutcome   `json:"outcome"`
	FinalState string       `json:"final_state"`
	Conclusion string       `json:"conclusion"`
	Steps      []StepRecord `json:"steps,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Accepted reports whether the run ended in full acceptance.
func (r *RunRecord) Accepted() bool {
	return r.Outcome == OutcomeAccepted
}
