package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui"
	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// wizardMode selects the compose wizard's flow.
type wizardMode int

const (
	wizardCreate wizardMode = iota
	wizardEdit
)

// runComposeWizard launches the interactive compose wizard. batch may be
// nil for a fresh create flow; draftID resumes an existing draft.
func runComposeWizard(cmd *cobra.Command, mode wizardMode, batch *domain.ChapterBatch, draftID string) error {
	// Panic recovery keeps a TUI crash from eating the stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in wizard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ports := &tui.Ports{
		Catalog: catalogService,
		Publish: publishService,
		Drafts:  draftService,
	}

	flow := tui.FlowCreate
	if mode == wizardEdit {
		flow = tui.FlowEdit
	}

	app, err := tui.NewApp(ports, flow, batch, draftID)
	if err != nil {
		return fmt.Errorf("failed to create wizard: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	return app.Err()
}
