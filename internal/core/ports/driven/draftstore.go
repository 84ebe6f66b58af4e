package driven

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// DraftStore persists in-progress batches locally.
type DraftStore interface {
	// Save stores or updates a draft.
	Save(ctx context.Context, draft domain.Draft) error

	// Get retrieves a draft by ID.
	Get(ctx context.Context, id string) (*domain.Draft, error)

	// Delete removes a draft.
	Delete(ctx context.Context, id string) error

	// List returns all drafts, most recently updated first.
	List(ctx context.Context) ([]domain.Draft, error)
}
