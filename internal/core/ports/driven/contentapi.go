package driven

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// ContentAPI is the remote content-management service coursectl writes to.
// All calls require a bearer credential supplied by a TokenProvider; how the
// credential is obtained is opaque to the core.
type ContentAPI interface {
	// FetchSubjects returns the full subject catalogue as a flat list.
	// Implementations must request an unbounded page size and unwrap any
	// pagination so the taxonomy filter sees every candidate.
	FetchSubjects(ctx context.Context) ([]domain.Subject, error)

	// CreateVideoPart writes one part of a new chapter. The create flow
	// issues one call per part, strictly in order.
	CreateVideoPart(ctx context.Context, upload domain.VideoUpload) error

	// UpdateChapterBatch replaces a chapter's parts with the given batch in
	// one aggregate write. Parts carrying an ID update existing records,
	// parts without one are created, and persisted parts absent from the
	// batch are deleted by the backend.
	UpdateChapterBatch(ctx context.Context, chapterID string, batch domain.ChapterBatch) error

	// FetchChapterBatch loads an existing chapter for editing.
	FetchChapterBatch(ctx context.Context, chapterID string) (*domain.ChapterBatch, error)
}
