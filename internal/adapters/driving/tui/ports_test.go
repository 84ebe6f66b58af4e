package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	ports := testPorts()
	assert.NoError(t, ports.Validate())

	// Drafts is optional.
	ports.Drafts = nil
	assert.NoError(t, ports.Validate())
}

func TestPorts_ValidateNil(t *testing.T) {
	var ports *Ports
	assert.ErrorContains(t, ports.Validate(), "ports is nil")
}
