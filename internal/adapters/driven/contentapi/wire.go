package contentapi

import (
	"encoding/json"
	"fmt"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// Wire shapes arriving from the content API are loosely typed: identifiers
// show up under "id" or "_id", list bodies are either bare arrays or a
// {"data": [...]} envelope, and optional fields come and go. Everything is
// mapped to the strict domain types here, in one place, so the rest of the
// code never branches on shape.

// wireSubject is one subject record as the API sends it.
type wireSubject struct {
	ID            string  `json:"id"`
	AltID         string  `json:"_id"`
	Title         string  `json:"title"`
	Code          string  `json:"code"`
	Department    string  `json:"department"`
	YearLevel     string  `json:"yearLevel"`
	OriginalPrice float64 `json:"originalPrice"`
	OfferPrice    float64 `json:"offerPrice"`
	CourseID      string  `json:"courseId"`
}

// identifier returns the record ID regardless of which key carried it.
func (w wireSubject) identifier() string {
	if w.ID != "" {
		return w.ID
	}
	return w.AltID
}

// toDomain maps the wire record to a domain Subject.
func (w wireSubject) toDomain() domain.Subject {
	return domain.Subject{
		ID:            w.identifier(),
		Title:         w.Title,
		Code:          w.Code,
		Department:    w.Department,
		YearLevel:     w.YearLevel,
		OriginalPrice: w.OriginalPrice,
		OfferPrice:    w.OfferPrice,
		CourseID:      w.CourseID,
	}
}

// listEnvelope is the paginated list wrapper some endpoints use.
type listEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

// decodeSubjectList accepts either a bare JSON array of subjects or an
// envelope wrapping one, and returns a flat domain slice. Records without
// any identifier are dropped.
func decodeSubjectList(body []byte) ([]domain.Subject, error) {
	raw := unwrapList(body)

	var records []wireSubject
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode subject list: %w", err)
	}

	subjects := make([]domain.Subject, 0, len(records))
	for _, r := range records {
		if r.identifier() == "" {
			continue
		}
		subjects = append(subjects, r.toDomain())
	}
	return subjects, nil
}

// unwrapList peels a {"data": [...]} envelope off a list body, returning
// the inner array. Bare arrays pass through.
func unwrapList(body []byte) json.RawMessage {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}
	return body
}

// wirePart is one video part on the wire, in both directions.
type wirePart struct {
	ID          string `json:"id,omitempty"`
	AltID       string `json:"_id,omitempty"`
	PartNumber  int    `json:"partNumber"`
	Title       string `json:"title,omitempty"`
	VideoURL    string `json:"videoUrl"`
	NoteLink    string `json:"noteLink,omitempty"`
	Description string `json:"description,omitempty"`
	IsFree      bool   `json:"isFree"`
}

// identifier returns the part ID regardless of which key carried it.
func (w wirePart) identifier() string {
	if w.ID != "" {
		return w.ID
	}
	return w.AltID
}

// toDomain maps a wire part to a domain part. The caller renumbers.
func (w wirePart) toDomain() domain.VideoPart {
	return domain.VideoPart{
		ID:          w.identifier(),
		PartNumber:  w.PartNumber,
		Title:       w.Title,
		VideoURL:    w.VideoURL,
		NoteLink:    w.NoteLink,
		Description: w.Description,
		IsFree:      w.IsFree,
	}
}

// partToWire maps a domain part to its wire form. New parts (empty ID)
// omit the identifier entirely so the backend creates records for them.
func partToWire(p domain.VideoPart) wirePart {
	return wirePart{
		ID:          p.ID,
		PartNumber:  p.PartNumber,
		Title:       p.Title,
		VideoURL:    p.VideoURL,
		NoteLink:    p.NoteLink,
		Description: p.Description,
		IsFree:      p.IsFree,
	}
}

// createVideoRequest is the create-flow per-part write payload.
type createVideoRequest struct {
	SubjectID   string `json:"subjectId"`
	ChapterName string `json:"chapterName"`
	PartNumber  int    `json:"partNumber"`
	Title       string `json:"title,omitempty"`
	VideoURL    string `json:"videoUrl"`
	NoteLink    string `json:"noteLink,omitempty"`
	Description string `json:"description,omitempty"`
	IsFree      bool   `json:"isFree"`
}

// uploadToWire maps a domain VideoUpload to the create payload.
func uploadToWire(u domain.VideoUpload) createVideoRequest {
	return createVideoRequest{
		SubjectID:   u.SubjectID,
		ChapterName: u.ChapterName,
		PartNumber:  u.Part.PartNumber,
		Title:       u.Part.Title,
		VideoURL:    u.Part.VideoURL,
		NoteLink:    u.Part.NoteLink,
		Description: u.Part.Description,
		IsFree:      u.Part.IsFree,
	}
}

// updateChapterRequest is the edit-flow aggregate write payload. Parts
// absent from Videos are implicit deletions, reconciled by the backend.
type updateChapterRequest struct {
	ChapterName string     `json:"chapterName"`
	SubjectID   string     `json:"subjectId"`
	Videos      []wirePart `json:"videos"`
}

// batchToWire maps a domain batch to the aggregate update payload.
func batchToWire(b domain.ChapterBatch) updateChapterRequest {
	videos := make([]wirePart, len(b.Parts))
	for i, p := range b.Parts {
		videos[i] = partToWire(p)
	}
	return updateChapterRequest{
		ChapterName: b.ChapterName,
		SubjectID:   b.SubjectID,
		Videos:      videos,
	}
}

// wireChapter is a chapter as returned by the API.
type wireChapter struct {
	ID          string     `json:"id"`
	AltID       string     `json:"_id"`
	ChapterName string     `json:"chapterName"`
	SubjectID   string     `json:"subjectId"`
	Videos      []wirePart `json:"videos"`
}

// toDomain maps a wire chapter to a domain batch. Part numbers are
// reassigned densely from wire order; the backend is not trusted to keep
// them contiguous.
func (w wireChapter) toDomain() *domain.ChapterBatch {
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	batch := &domain.ChapterBatch{
		ChapterID:   id,
		ChapterName: w.ChapterName,
		SubjectID:   w.SubjectID,
		Parts:       make([]domain.VideoPart, len(w.Videos)),
	}
	for i, v := range w.Videos {
		part := v.toDomain()
		part.PartNumber = i + 1
		batch.Parts[i] = part
	}
	return batch
}
