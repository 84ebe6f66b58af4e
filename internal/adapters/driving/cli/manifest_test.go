package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadManifest_BuildsDenselyNumberedBatch(t *testing.T) {
	path := writeManifest(t, `
chapter = "Limits"
subject = "s1"

[[parts]]
title     = "Intro"
video_url = "https://youtu.be/dQw4w9WgXcQ"
free      = true

[[parts]]
title     = "Continuity"
video_url = "https://youtu.be/abcdefghijk"
note_link = "https://example.edu/notes.pdf"
`)

	batch, err := loadManifest(path)

	require.NoError(t, err)
	assert.Equal(t, "Limits", batch.ChapterName)
	assert.Equal(t, "s1", batch.SubjectID)
	require.Len(t, batch.Parts, 2)
	assert.Equal(t, 1, batch.Parts[0].PartNumber)
	assert.Equal(t, 2, batch.Parts[1].PartNumber)
	assert.True(t, batch.Parts[0].IsFree)
	assert.Equal(t, "https://example.edu/notes.pdf", batch.Parts[1].NoteLink)
}

func TestLoadManifest_CarriesPartIDsForEdits(t *testing.T) {
	path := writeManifest(t, `
chapter = "Limits"
subject = "s1"

[[parts]]
id        = "v1"
title     = "Intro"
video_url = "https://youtu.be/dQw4w9WgXcQ"
`)

	batch, err := loadManifest(path)

	require.NoError(t, err)
	assert.Equal(t, "v1", batch.Parts[0].ID)
}

func TestLoadManifest_RejectsEmptyParts(t *testing.T) {
	path := writeManifest(t, `chapter = "Limits"`)

	_, err := loadManifest(path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := loadManifest(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestLoadManifest_MalformedTOML(t *testing.T) {
	path := writeManifest(t, `chapter = [broken`)

	_, err := loadManifest(path)

	assert.Error(t, err)
}
