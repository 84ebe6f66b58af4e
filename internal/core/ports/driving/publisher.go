package driving

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// ConfirmFunc asks the user to confirm a submission. Returning false
// cancels the publish without touching the batch.
type ConfirmFunc func(prompt string) (bool, error)

// PublishOptions tunes per-call-site publish policy.
type PublishOptions struct {
	// Confirm, when non-nil, is asked before writing. Create-flow
	// confirmation is optional policy; leave nil to submit directly.
	Confirm ConfirmFunc

	// ResetAfter resets the batch to a single empty part after a
	// successful create-flow publish.
	ResetAfter bool
}

// PublishService validates a composed batch, confirms the action, performs
// the write, and reports the outcome.
type PublishService interface {
	// Create submits a new chapter, one sequential write per part, and
	// returns the number of parts saved. A failure part-way through
	// returns a *domain.PartialPublishError carrying that count.
	Create(ctx context.Context, batch *domain.ChapterBatch, opts PublishOptions) (int, error)

	// Update submits an existing chapter's full parts array in one
	// aggregate write. A batch-wide rewrite is destructive, so confirm
	// is mandatory; Update fails without one.
	Update(ctx context.Context, batch *domain.ChapterBatch, confirm ConfirmFunc) error

	// Load fetches an existing chapter into a fresh batch for editing.
	// A chapter with zero parts is given a single default empty part.
	Load(ctx context.Context, chapterID string) (*domain.ChapterBatch, error)
}
