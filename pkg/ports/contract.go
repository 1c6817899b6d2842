package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata/pkg/domain"
)

// RunStoreContract runs a suite of tests verifying that a RunStore
// implementation adheres to the interface contract. Adapter test packages
// call it against their concrete store.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	record := &domain.RunRecord{
		ID:         runID,
		Kind:       "email",
		Input:      "a@b.com",
		Outcome:    domain.OutcomeAccepted,
		FinalState: "q5",
		Conclusion: "accepted",
		Steps: []domain.StepRecord{
			{From: "q0", To: "q1", Symbol: "a", Valid: true},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.Kind, loaded.Kind)
		assert.Equal(t, record.Input, loaded.Input)
		assert.Equal(t, record.Outcome, loaded.Outcome)
		assert.Len(t, loaded.Steps, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, record))

		err := store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		r1 := *record
		r1.ID = runID + "-1"
		r2 := *record
		r2.ID = runID + "-2"
		_ = store.Save(ctx, &r1)
		_ = store.Save(ctx, &r2)

		defer func() {
			_ = store.Delete(ctx, r1.ID)
			_ = store.Delete(ctx, r2.ID)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, r1.ID)
		assert.Contains(t, ids, r2.ID)
	})
}
