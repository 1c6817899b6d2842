package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata/pkg/adapters/memory"
	"github.com/fsmlab/automata/pkg/domain"
	"github.com/fsmlab/automata/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, memory.NewStore())
}

func TestStore_CopiesOnSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	record := &domain.RunRecord{
		ID:        "r1",
		Kind:      "email",
		Input:     "a@b.com",
		Outcome:   domain.OutcomeAccepted,
		Steps:     []domain.StepRecord{{From: "q0", To: "q1", Symbol: "a", Valid: true}},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, record))

	// Mutating the original after Save must not leak into the store.
	record.Input = "mutated"
	record.Steps[0].Symbol = "z"

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", loaded.Input)
	assert.Equal(t, "a", loaded.Steps[0].Symbol)

	// Mutating a loaded copy must not affect subsequent loads.
	loaded.Outcome = domain.OutcomeRejected
	again, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, again.Outcome)
}
