package domain

import "fmt"

// VideoPart is one video segment within a chapter, numbered by its position.
type VideoPart struct {
	// ID is the backend record ID; set only for parts that already exist
	// server-side (edit flow). New parts carry an empty ID.
	ID string

	// PartNumber is the dense 1-based position of the part in the chapter.
	// It always matches the part's index in ChapterBatch.Parts and is only
	// changed by add/remove renumbering, never set directly.
	PartNumber int

	// Title is the display title. Optional; the backend defaults it.
	Title string

	// VideoURL is the pasted video link. Required before submission.
	VideoURL string

	// NoteLink is an optional link to lecture notes.
	NoteLink string

	// Description is optional free text.
	Description string

	// IsFree marks the part as watchable without purchase.
	IsFree bool
}

// ChapterBatch is the unit of submission: a named chapter's ordered parts,
// authored against one subject. It has no persistent identity of its own;
// identity lives in the backend's chapter and video records.
type ChapterBatch struct {
	// ChapterID is the backend chapter ID, set only in the edit flow.
	ChapterID string

	// ChapterName names the chapter. Required before submission.
	ChapterName string

	// SubjectID references the subject the chapter belongs to.
	SubjectID string

	// Parts is the ordered part sequence. A batch always holds at least
	// one part.
	Parts []VideoPart
}

// NewChapterBatch creates an empty batch holding a single default part.
func NewChapterBatch() *ChapterBatch {
	b := &ChapterBatch{}
	b.Reset()
	return b
}

// Reset returns the batch to a single empty part. Used after a successful
// create-flow publish and when a fetched chapter arrives with zero parts.
func (b *ChapterBatch) Reset() {
	b.Parts = []VideoPart{{PartNumber: 1}}
}

// AddPart appends a new empty part numbered after the last one. Never fails.
func (b *ChapterBatch) AddPart() {
	b.Parts = append(b.Parts, VideoPart{PartNumber: len(b.Parts) + 1})
}

// RemovePart removes the part at index and renumbers the remainder densely.
// It refuses (returns false) when index is out of range or when removal
// would leave the batch empty.
func (b *ChapterBatch) RemovePart(index int) bool {
	if index < 0 || index >= len(b.Parts) || len(b.Parts) <= 1 {
		return false
	}
	b.Parts = append(b.Parts[:index], b.Parts[index+1:]...)
	b.renumber()
	return true
}

// UpdatePart edits the part at index in place. PartNumber is reasserted
// afterwards so field edits can never break the position invariant.
// Returns false when index is out of range.
func (b *ChapterBatch) UpdatePart(index int, edit func(*VideoPart)) bool {
	if index < 0 || index >= len(b.Parts) {
		return false
	}
	edit(&b.Parts[index])
	b.Parts[index].PartNumber = index + 1
	return true
}

// renumber reasserts the dense 1-based sequence after a removal.
func (b *ChapterBatch) renumber() {
	for i := range b.Parts {
		b.Parts[i].PartNumber = i + 1
	}
}

// VideoUpload is the payload for one create-flow part write: the part plus
// the batch-wide context it is tagged with. The video URL inside Part is
// already normalised by the time an upload is built.
type VideoUpload struct {
	SubjectID   string
	ChapterName string
	Part        VideoPart
}

// Validate checks the submission preconditions: a subject, a chapter name,
// and a video URL on every part. It reports all failures at once so the
// user can fix them in one pass. Returns nil when the batch is submittable.
func (b *ChapterBatch) Validate() error {
	var issues []string
	if b.SubjectID == "" {
		issues = append(issues, "no subject selected")
	}
	if b.ChapterName == "" {
		issues = append(issues, "chapter name is required")
	}
	for i, p := range b.Parts {
		if p.VideoURL == "" {
			issues = append(issues, fmt.Sprintf("part %d has no video URL", i+1))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
