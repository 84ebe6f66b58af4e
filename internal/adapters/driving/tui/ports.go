// Package tui provides the interactive compose wizard for coursectl.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides the subject catalogue and taxonomy options.
	Catalog driving.CatalogService

	// Publish validates and submits composed batches.
	Publish driving.PublishService

	// Drafts persists in-progress composing sessions. Optional; without
	// it the wizard simply cannot save drafts.
	Drafts driving.DraftService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports is nil")
	}
	if p.Catalog == nil {
		return errors.New("catalog service is required")
	}
	if p.Publish == nil {
		return errors.New("publish service is required")
	}
	return nil
}
