package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/messages"
	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/styles"
	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/views/compose"
	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// Flow values accepted by NewApp.
const (
	// FlowCreate composes a brand new chapter.
	FlowCreate = domain.FlowCreate

	// FlowEdit reworks a chapter that already exists server-side.
	FlowEdit = domain.FlowEdit
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// composeView is the chapter composing wizard.
	composeView *compose.View

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. batch may be
// nil for a fresh create-flow session; the edit flow requires the loaded
// batch. draftID, when set, ties the session to an existing local draft.
func NewApp(ports *Ports, flow string, batch *domain.ChapterBatch, draftID string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if flow != FlowCreate && flow != FlowEdit {
		return nil, fmt.Errorf("unknown flow %q", flow)
	}
	if flow == FlowEdit && batch == nil {
		return nil, fmt.Errorf("edit flow requires a loaded batch")
	}

	s := styles.DefaultStyles()
	composeView := compose.NewView(s, ports.Catalog, ports.Publish, ports.Drafts, flow, batch, draftID)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		composeView: composeView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.composeView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("coursectl - Compose"),
		a.composeView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.composeView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.ErrorOccurred:
		a.err = msg.Err

	case messages.Quit:
		return a, tea.Quit
	}

	a.composeView, cmd = a.composeView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.composeView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Batch returns the batch under composition.
func (a *App) Batch() *domain.ChapterBatch {
	return a.composeView.Batch()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	if a.err != nil {
		return a.err
	}
	return a.composeView.Err()
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.composeView.SetDimensions(width, height)
}
