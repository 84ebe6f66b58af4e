package domain

import "time"

// Draft flow values.
const (
	// FlowCreate is a draft for a brand new chapter.
	FlowCreate = "create"

	// FlowEdit is a draft editing a chapter that already exists server-side.
	FlowEdit = "edit"
)

// Draft is a locally-persisted snapshot of an in-progress batch, so an
// abandoned composing session can be resumed. Drafts never leave the local
// machine and are removed after a successful publish.
type Draft struct {
	// ID is the local draft identifier.
	ID string

	// Name is a short human-readable label shown in draft listings.
	Name string

	// Flow is FlowCreate or FlowEdit.
	Flow string

	// Batch is the saved composer state.
	Batch ChapterBatch

	// CreatedAt is when the draft was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the draft was last saved.
	UpdatedAt time.Time
}
