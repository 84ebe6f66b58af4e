package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "coursectl version dev")
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty string keeps the current value.
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
