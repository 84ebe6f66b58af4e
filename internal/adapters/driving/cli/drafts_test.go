package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

func TestDraftsCmd_EmptyList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"drafts"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "No drafts.")
}

func TestDraftsCmd_ListShowsDrafts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := draftService.(*fakeDrafts)
	fake.drafts["d1"] = domain.Draft{
		ID:        "d1",
		Name:      "Limits",
		Flow:      domain.FlowCreate,
		Batch:     *domain.NewChapterBatch(),
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"drafts", "list"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "Limits")
	assert.Contains(t, out, "1 part(s)")
}

func TestDraftsDeleteCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fake := draftService.(*fakeDrafts)
	fake.drafts["d1"] = domain.Draft{ID: "d1"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"drafts", "delete", "d1"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Draft d1 deleted.")
	assert.Equal(t, []string{"d1"}, fake.deleted)
}

func TestDraftsResumeCmd_MissingDraft(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"drafts", "resume", "missing"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
