package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChapterBatch_StartsWithOnePart(t *testing.T) {
	b := NewChapterBatch()
	require.Len(t, b.Parts, 1)
	assert.Equal(t, 1, b.Parts[0].PartNumber)
	assert.Empty(t, b.Parts[0].VideoURL)
}

func TestAddPart_NumbersSequentially(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()
	b.AddPart()

	require.Len(t, b.Parts, 3)
	for i, p := range b.Parts {
		assert.Equal(t, i+1, p.PartNumber)
	}
}

func TestRemovePart_RenumbersDensely(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()
	b.AddPart()
	b.UpdatePart(0, func(p *VideoPart) { p.Title = "first" })
	b.UpdatePart(1, func(p *VideoPart) { p.Title = "second" })
	b.UpdatePart(2, func(p *VideoPart) { p.Title = "third" })

	ok := b.RemovePart(1)

	require.True(t, ok)
	require.Len(t, b.Parts, 2)
	assert.Equal(t, "first", b.Parts[0].Title)
	assert.Equal(t, "third", b.Parts[1].Title)
	assert.Equal(t, 1, b.Parts[0].PartNumber)
	assert.Equal(t, 2, b.Parts[1].PartNumber)
}

func TestRemovePart_RefusesLastPart(t *testing.T) {
	b := NewChapterBatch()

	ok := b.RemovePart(0)

	assert.False(t, ok)
	require.Len(t, b.Parts, 1)
	assert.Equal(t, 1, b.Parts[0].PartNumber)
}

func TestRemovePart_RefusesOutOfRange(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()

	assert.False(t, b.RemovePart(-1))
	assert.False(t, b.RemovePart(2))
	assert.Len(t, b.Parts, 2)
}

func TestUpdatePart_ReassertsPartNumber(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()

	ok := b.UpdatePart(1, func(p *VideoPart) {
		p.Title = "edited"
		p.PartNumber = 99 // must not stick
	})

	require.True(t, ok)
	assert.Equal(t, "edited", b.Parts[1].Title)
	assert.Equal(t, 2, b.Parts[1].PartNumber)
}

func TestUpdatePart_OutOfRange(t *testing.T) {
	b := NewChapterBatch()
	assert.False(t, b.UpdatePart(5, func(p *VideoPart) { p.Title = "x" }))
}

func TestReset_ReturnsToSingleEmptyPart(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()
	b.UpdatePart(0, func(p *VideoPart) { p.VideoURL = "https://youtu.be/abcdefghijk" })

	b.Reset()

	require.Len(t, b.Parts, 1)
	assert.Equal(t, 1, b.Parts[0].PartNumber)
	assert.Empty(t, b.Parts[0].VideoURL)
}

func TestValidate_ReportsAllIssuesAtOnce(t *testing.T) {
	b := NewChapterBatch()
	b.AddPart()

	err := b.Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// No subject, no chapter name, two parts without URLs.
	assert.Len(t, vErr.Issues, 4)
	assert.Contains(t, vErr.Issues, "no subject selected")
	assert.Contains(t, vErr.Issues, "chapter name is required")
	assert.Contains(t, vErr.Issues, "part 1 has no video URL")
	assert.Contains(t, vErr.Issues, "part 2 has no video URL")
}

func TestValidate_PassesCompleteBatch(t *testing.T) {
	b := NewChapterBatch()
	b.SubjectID = "sub-1"
	b.ChapterName = "Limits"
	b.UpdatePart(0, func(p *VideoPart) { p.VideoURL = "https://youtu.be/abcdefghijk" })

	assert.NoError(t, b.Validate())
}
