package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

func existingChapter() *domain.ChapterBatch {
	return &domain.ChapterBatch{
		ChapterID:   "ch-1",
		ChapterName: "Limits",
		SubjectID:   "s1",
		Parts: []domain.VideoPart{
			{ID: "v1", PartNumber: 1, Title: "Intro", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
	}
}

func TestEditCmd_RequiresChapterArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"edit"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestEditCmd_ReplacesPartsFromManifest(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	publishService = &fakePublish{chapter: existingChapter()}
	path := writeManifest(t, `
[[parts]]
id        = "v1"
title     = "Intro (reworked)"
video_url = "https://youtu.be/dQw4w9WgXcQ"

[[parts]]
title     = "New part"
video_url = "https://youtu.be/abcdefghijk"
`)

	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader("y\n"))
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"edit", "ch-1", "--file", path})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), `Chapter "Limits" updated with 2 part(s).`)
	fake := publishService.(*fakePublish)
	require.NotNil(t, fake.updateBatch)
	assert.Equal(t, "ch-1", fake.updateBatch.ChapterID)
	// Chapter identity stays as fetched when the manifest omits it.
	assert.Equal(t, "Limits", fake.updateBatch.ChapterName)
	assert.Equal(t, "s1", fake.updateBatch.SubjectID)
	require.Len(t, fake.updateBatch.Parts, 2)
	assert.Equal(t, "v1", fake.updateBatch.Parts[0].ID)
	assert.Empty(t, fake.updateBatch.Parts[1].ID)
}

func TestEditCmd_ManifestOverridesChapterName(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	publishService = &fakePublish{chapter: existingChapter()}
	path := writeManifest(t, `
chapter = "Limits and Continuity"

[[parts]]
video_url = "https://youtu.be/dQw4w9WgXcQ"
`)

	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader("y\n"))
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"edit", "ch-1", "-f", path})

	require.NoError(t, rootCmd.Execute())

	fake := publishService.(*fakePublish)
	require.NotNil(t, fake.updateBatch)
	assert.Equal(t, "Limits and Continuity", fake.updateBatch.ChapterName)
}

func TestEditCmd_DeclinedConfirmationCancels(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	publishService = &fakePublish{chapter: existingChapter()}
	path := writeManifest(t, `
[[parts]]
video_url = "https://youtu.be/dQw4w9WgXcQ"
`)

	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader("n\n"))
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"edit", "ch-1", "-f", path})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Cancelled.")
	fake := publishService.(*fakePublish)
	assert.Nil(t, fake.updateBatch)
}

func TestEditCmd_LoadFailure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	publishService = &fakePublish{loadErr: domain.ErrNotFound}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"edit", "missing", "-f", "irrelevant.toml"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
