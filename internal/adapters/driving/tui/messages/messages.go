// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// SubjectsLoaded carries the subject catalogue from the catalog service.
type SubjectsLoaded struct {
	Subjects []domain.Subject
	Err      error
}

// PublishFinished carries the outcome of a publish attempt.
type PublishFinished struct {
	// Created is the number of parts written. For a create-flow failure
	// part-way through, the wrapped PartialPublishError carries the same
	// count.
	Created int
	Err     error
}

// DraftSaved signals a draft save completed.
type DraftSaved struct {
	Draft domain.Draft
	Err   error
}

// DraftDeleted signals the published draft was cleaned up.
type DraftDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
