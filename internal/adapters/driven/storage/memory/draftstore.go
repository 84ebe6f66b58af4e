// Package memory provides in-memory implementations of the storage ports,
// used by tests and as a fallback when no data directory is available.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
)

// Ensure DraftStore implements the interface.
var _ driven.DraftStore = (*DraftStore)(nil)

// DraftStore is an in-memory implementation of driven.DraftStore.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

// NewDraftStore creates a new in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]domain.Draft),
	}
}

// Save stores or updates a draft.
func (s *DraftStore) Save(_ context.Context, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return nil
}

// Get retrieves a draft by ID.
func (s *DraftStore) Get(_ context.Context, id string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &draft, nil
}

// Delete removes a draft.
func (s *DraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// List returns all drafts, most recently updated first.
func (s *DraftStore) List(_ context.Context) ([]domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Draft, 0, len(s.drafts))
	for _, draft := range s.drafts {
		result = append(result, draft)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}
