package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// DraftService manages locally-saved composing sessions.
type DraftService struct {
	store driven.DraftStore
}

// NewDraftService creates a new draft service.
func NewDraftService(store driven.DraftStore) *DraftService {
	return &DraftService{store: store}
}

// Save stores the batch as a draft and returns it. A draft ID and creation
// time are assigned on first save; the name defaults to the chapter name.
func (s *DraftService) Save(ctx context.Context, draft domain.Draft) (domain.Draft, error) {
	if s.store == nil {
		return domain.Draft{}, domain.ErrNotImplemented
	}
	if draft.Flow != domain.FlowCreate && draft.Flow != domain.FlowEdit {
		return domain.Draft{}, fmt.Errorf("unknown draft flow %q: %w", draft.Flow, domain.ErrInvalidInput)
	}

	now := time.Now()
	if draft.ID == "" {
		draft.ID = uuid.New().String()
		draft.CreatedAt = now
	}
	if draft.Name == "" {
		draft.Name = draft.Batch.ChapterName
	}
	if draft.Name == "" {
		draft.Name = "untitled"
	}
	draft.UpdatedAt = now

	if err := s.store.Save(ctx, draft); err != nil {
		return domain.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// Get retrieves a draft by ID.
func (s *DraftService) Get(ctx context.Context, id string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all drafts, most recently updated first.
func (s *DraftService) List(ctx context.Context) ([]domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a draft.
func (s *DraftService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
