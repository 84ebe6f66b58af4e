package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// manifestFile is the TOML shape of a batch manifest, the non-interactive
// way to compose a chapter:
//
//	chapter = "Introduction"
//	subject = "s-calculus-1"
//
//	[[parts]]
//	title     = "Limits"
//	video_url = "https://youtu.be/dQw4w9WgXcQ"
//	free      = true
type manifestFile struct {
	Chapter string         `toml:"chapter"`
	Subject string         `toml:"subject"`
	Parts   []manifestPart `toml:"parts"`
}

type manifestPart struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	VideoURL    string `toml:"video_url"`
	NoteLink    string `toml:"note_link"`
	Description string `toml:"description"`
	Free        bool   `toml:"free"`
}

// loadManifest reads a batch manifest into a ChapterBatch. The batch is
// built through the composer operations so part numbering is dense
// regardless of manifest order or omissions.
func loadManifest(path string) (*domain.ChapterBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(mf.Parts) == 0 {
		return nil, fmt.Errorf("manifest has no parts: %w", domain.ErrInvalidInput)
	}

	batch := domain.NewChapterBatch()
	batch.ChapterName = mf.Chapter
	batch.SubjectID = mf.Subject

	for i, p := range mf.Parts {
		if i > 0 {
			batch.AddPart()
		}
		part := p
		batch.UpdatePart(i, func(v *domain.VideoPart) {
			v.ID = part.ID
			v.Title = part.Title
			v.VideoURL = part.VideoURL
			v.NoteLink = part.NoteLink
			v.Description = part.Description
			v.IsFree = part.Free
		})
	}

	return batch, nil
}
