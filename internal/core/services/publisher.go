package services

import (
	"context"
	"fmt"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
	"github.com/edustack-labs/coursectl/internal/logger"
	"github.com/edustack-labs/coursectl/internal/normalisers/videourl"
)

// Ensure PublishService implements the interface.
var _ driving.PublishService = (*PublishService)(nil)

// PublishService is the submission coordinator: it validates a composed
// batch, obtains confirmation, performs the write, and reports the outcome.
//
// Validation failures never reach the network layer, and any failure leaves
// the in-memory batch intact and editable so the user can correct and
// resubmit without re-entering data.
type PublishService struct {
	api driven.ContentAPI

	// busy guards against double submission (e.g., a double-press of the
	// submit key). All operations run on one goroutine, so a plain flag
	// is enough; there is no locking here.
	busy bool
}

// NewPublishService creates a new publish service.
func NewPublishService(api driven.ContentAPI) *PublishService {
	return &PublishService{api: api}
}

// Create submits a new chapter, one write per part, strictly in order.
// Part N+1 is only submitted after part N's write resolves, so the
// success count in a PartialPublishError is always exact.
//
// Returns the number of parts saved. On success, the batch is reset to a
// single empty part when opts.ResetAfter is set.
func (s *PublishService) Create(
	ctx context.Context, batch *domain.ChapterBatch, opts driving.PublishOptions,
) (int, error) {
	if s.api == nil {
		return 0, domain.ErrNotImplemented
	}
	if err := batch.Validate(); err != nil {
		return 0, err
	}
	if s.busy {
		return 0, domain.ErrPublishInFlight
	}

	if opts.Confirm != nil {
		prompt := fmt.Sprintf("Upload %d part(s) to chapter %q?", len(batch.Parts), batch.ChapterName)
		ok, err := opts.Confirm(prompt)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, domain.ErrPublishCancelled
		}
	}

	s.busy = true
	defer func() { s.busy = false }()

	for i, part := range batch.Parts {
		part.VideoURL = videourl.EmbedURL(part.VideoURL)
		upload := domain.VideoUpload{
			SubjectID:   batch.SubjectID,
			ChapterName: batch.ChapterName,
			Part:        part,
		}
		if err := s.api.CreateVideoPart(ctx, upload); err != nil {
			logger.Warn("create part %d/%d failed: %v", i+1, len(batch.Parts), err)
			return i, &domain.PartialPublishError{
				Succeeded: i,
				Total:     len(batch.Parts),
				Err:       err,
			}
		}
		logger.Debug("created part %d/%d for chapter %q", i+1, len(batch.Parts), batch.ChapterName)
	}

	if opts.ResetAfter {
		batch.Reset()
	}
	return len(batch.Parts), nil
}

// Update submits the full parts array of an existing chapter in one
// aggregate write. Parts carrying a persisted ID update existing records,
// parts without one are created, and persisted parts missing from the
// array are deleted by the backend. A batch-wide rewrite is destructive,
// so confirmation is mandatory.
func (s *PublishService) Update(
	ctx context.Context, batch *domain.ChapterBatch, confirm driving.ConfirmFunc,
) error {
	if s.api == nil {
		return domain.ErrNotImplemented
	}
	if confirm == nil {
		return fmt.Errorf("update requires a confirmation hook: %w", domain.ErrInvalidInput)
	}
	if batch.ChapterID == "" {
		return fmt.Errorf("update without chapter ID: %w", domain.ErrInvalidInput)
	}
	if err := batch.Validate(); err != nil {
		return err
	}
	if s.busy {
		return domain.ErrPublishInFlight
	}

	prompt := fmt.Sprintf("Replace all parts of chapter %q with %d part(s)?", batch.ChapterName, len(batch.Parts))
	ok, err := confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPublishCancelled
	}

	s.busy = true
	defer func() { s.busy = false }()

	submitted := *batch
	submitted.Parts = make([]domain.VideoPart, len(batch.Parts))
	for i, part := range batch.Parts {
		part.VideoURL = videourl.EmbedURL(part.VideoURL)
		submitted.Parts[i] = part
	}

	if err := s.api.UpdateChapterBatch(ctx, batch.ChapterID, submitted); err != nil {
		logger.Warn("update chapter %s failed: %v", batch.ChapterID, err)
		return fmt.Errorf("update chapter: %w", err)
	}
	logger.Info("chapter %q updated with %d part(s)", batch.ChapterName, len(batch.Parts))
	return nil
}

// Load fetches an existing chapter into a batch for editing. A chapter
// that comes back with zero parts is given a single default empty part so
// the composer never starts empty.
func (s *PublishService) Load(ctx context.Context, chapterID string) (*domain.ChapterBatch, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if chapterID == "" {
		return nil, domain.ErrInvalidInput
	}

	batch, err := s.api.FetchChapterBatch(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("fetch chapter: %w", err)
	}
	if len(batch.Parts) == 0 {
		batch.Reset()
	}
	return batch, nil
}
