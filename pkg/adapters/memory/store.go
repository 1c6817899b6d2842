package memory

import (
	"context"
	"sync"

	"github.com/fsmlab/automata/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.RunRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory run store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.RunRecord),
	}
}

// Save persists the run in memory.
func (s *Store) Save(ctx context.Context, record *domain.RunRecord) error {
	// Copy so later caller mutations cannot leak into the store.
	copied := *record
	copied.Steps = append([]domain.StepRecord(nil), record.Steps...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = &copied
	return nil
}

// Load retrieves a run from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}

	ret := *record
	ret.Steps = append([]domain.StepRecord(nil), record.Steps...)
	return &ret, nil
}

// Delete removes a run.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored run IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
