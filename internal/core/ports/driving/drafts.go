package driving

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// DraftService manages locally-saved composing sessions.
type DraftService interface {
	// Save stores the batch as a draft and returns it. A draft ID is
	// assigned on first save.
	Save(ctx context.Context, draft domain.Draft) (domain.Draft, error)

	// Get retrieves a draft by ID.
	Get(ctx context.Context, id string) (*domain.Draft, error)

	// List returns all drafts, most recently updated first.
	List(ctx context.Context) ([]domain.Draft, error)

	// Delete removes a draft.
	Delete(ctx context.Context, id string) error
}
