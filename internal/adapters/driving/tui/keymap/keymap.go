// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the compose wizard.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous step.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection or opens the highlighted part.
	Select key.Binding

	// AddPart appends an empty part to the batch.
	AddPart key.Binding

	// RemovePart removes the highlighted part.
	RemovePart key.Binding

	// ToggleFree flips the highlighted part's free-preview flag.
	ToggleFree key.Binding

	// SaveDraft stores the composer state as a local draft.
	SaveDraft key.Binding

	// Publish moves to the confirmation step.
	Publish key.Binding

	// NextField focuses the next input field.
	NextField key.Binding

	// PrevField focuses the previous input field.
	PrevField key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		AddPart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add part"),
		),
		RemovePart: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove part"),
		),
		ToggleFree: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle free"),
		),
		SaveDraft: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save draft"),
		),
		Publish: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "publish"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
	}
}
