package automata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata"
	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
)

// feed runs the caller-side step loop: every symbol in order, halting on the
// first rejection.
func feed(t *testing.T, a *automata.Automaton, input string) bool {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, a.Reset(ctx))
	for _, sym := range input {
		res, err := a.Step(ctx, sym)
		require.NoError(t, err)
		if !res.Valid {
			return false
		}
	}
	return true
}

func TestConstruct_UnknownKind(t *testing.T) {
	_, err := automata.Construct("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestReset_ReturnsStartState(t *testing.T) {
	for _, kind := range definitions.Kinds() {
		t.Run(kind, func(t *testing.T) {
			a, err := automata.Construct(kind)
			require.NoError(t, err)

			require.NoError(t, a.Reset(context.Background()))
			cur := a.Current()
			require.NotNil(t, cur)
			assert.True(t, cur.IsStart)
			assert.Empty(t, a.History())
		})
	}
}

func TestEmail_Accepted(t *testing.T) {
	a, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)

	valid := feed(t, a, "a@b.com")
	require.True(t, valid)
	assert.Equal(t, domain.OutcomeAccepted, a.Outcome(valid))
	assert.Equal(t, "extension", a.Current().Label)
	assert.Contains(t, a.Conclusion("a@b.com", valid), "valid address")
	assert.Len(t, a.History(), len("a@b.com"))
}

func TestEmail_RejectedOnConsecutiveDots(t *testing.T) {
	a, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)

	valid := feed(t, a, "a..b@c.com")
	require.False(t, valid)
	assert.Equal(t, domain.OutcomeRejected, a.Outcome(valid))
	// The run halts at the second dot; only "a" was consumed.
	assert.Len(t, a.History(), 1)
	assert.Contains(t, a.Conclusion("a..b@c.com", valid), "consecutive dots")
}

func TestEmail_IncompleteWithoutAtSign(t *testing.T) {
	a, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)

	valid := feed(t, a, "abc")
	require.True(t, valid)
	assert.Equal(t, domain.OutcomeIncomplete, a.Outcome(valid))
	assert.Equal(t, "local part", a.Current().Label)
	assert.Contains(t, a.Conclusion("abc", valid), "'@'")
}

func TestDivisibleBy3_Accepted(t *testing.T) {
	a, err := automata.Construct(definitions.KindDivisibleBy3)
	require.NoError(t, err)

	valid := feed(t, a, "123")
	require.True(t, valid)
	assert.Equal(t, domain.OutcomeAccepted, a.Outcome(valid))

	conclusion := a.Conclusion("123", valid)
	assert.Contains(t, conclusion, "6")
	assert.Contains(t, conclusion, "divisible by 3")
}

func TestDivisibleBy3_IncompleteRemainder(t *testing.T) {
	a, err := automata.Construct(definitions.KindDivisibleBy3)
	require.NoError(t, err)

	valid := feed(t, a, "11")
	require.True(t, valid)
	assert.Equal(t, domain.OutcomeIncomplete, a.Outcome(valid))
	assert.Equal(t, "remainder 2", a.Current().Label)

	conclusion := a.Conclusion("11", valid)
	assert.Contains(t, conclusion, "2")
	assert.Contains(t, conclusion, "remainder 2")
}

func TestDelayIndependence(t *testing.T) {
	// The same input must produce the same step sequence regardless of any
	// pacing between the calls; the engine is synchronous.
	run := func() []domain.StepRecord {
		a, err := automata.Construct(definitions.KindEmail)
		require.NoError(t, err)
		feed(t, a, "x@y.zz")
		return a.History()
	}
	assert.Equal(t, run(), run())
}

func TestGrammarIsFixed(t *testing.T) {
	a, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)

	before := a.Grammar()
	feed(t, a, "whatever!!")
	assert.Equal(t, before, a.Grammar())
	assert.NotEmpty(t, before)
}

func TestIndependentInstances(t *testing.T) {
	a1, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)
	a2, err := automata.Construct(definitions.KindEmail)
	require.NoError(t, err)

	feed(t, a1, "abc")
	require.NoError(t, a2.Reset(context.Background()))

	assert.Equal(t, "local part", a1.Current().Label)
	assert.Equal(t, "start", a2.Current().Label)
}
