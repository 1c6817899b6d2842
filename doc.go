/*
Package automata simulates deterministic finite automata (DFAs) step by step
over an input string, reporting for every symbol whether it was accepted and
which transition fired, and producing a natural-language explanation of why a
run was accepted, rejected or left incomplete.

The engine is generic: it owns a state set, an ordered transition table, a
current-state pointer and a step history, and exposes only Reset and Step.
Everything domain-specific lives in a definition (see package definitions):
the tables, an optional symbol-matcher override, and the Conclude diagnostic.

# Usage

	a, err := automata.Construct(definitions.KindEmail)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := a.Reset(ctx); err != nil {
		log.Fatal(err)
	}

	input := "a@b.com"
	valid := true
	for _, sym := range input {
		res, err := a.Step(ctx, sym)
		if err != nil {
			log.Fatal(err)
		}
		if !res.Valid {
			valid = false
			break
		}
	}

	fmt.Println(a.Conclusion(input, valid))

Rejection is an expected outcome, not an error: Step returns a structured
StepResult and leaves the state untouched, and the caller decides whether to
halt the loop. Only structural misconfiguration (a missing or duplicated
start state) is a hard failure.

For paced, animated execution with notification rendering and optional run
persistence, see package runner. For serving automata over HTTP, see
pkg/adapters/http.
*/
package automata
