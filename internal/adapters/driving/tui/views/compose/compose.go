// Package compose provides the chapter composing wizard view for the TUI.
//
// The wizard walks the cascading subject selection (department, year level,
// subject), the chapter name, and a parts editor, then confirms and
// submits. The same view drives both the create flow and the edit flow;
// the edit flow starts directly on the parts editor with the fetched batch.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/keymap"
	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/messages"
	"github.com/edustack-labs/coursectl/internal/adapters/driving/tui/styles"
	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

// WizardStep tracks the current step in the wizard.
type WizardStep int

const (
	StepLoading WizardStep = iota
	StepSelectDepartment
	StepSelectYear
	StepSelectSubject
	StepEnterChapter
	StepEditParts
	StepEditPart
	StepConfirm
	StepSubmitting
	StepComplete
)

// Part edit field indices.
const (
	fieldTitle = iota
	fieldVideoURL
	fieldNoteLink
	fieldDescription
	fieldCount
)

// View is the compose wizard view.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap

	catalog driving.CatalogService
	publish driving.PublishService
	drafts  driving.DraftService

	ctx     context.Context
	flow    string // domain.FlowCreate or domain.FlowEdit
	draftID string

	// Wizard state
	step      WizardStep
	batch     *domain.ChapterBatch
	selection domain.Selection
	subjects  []domain.Subject

	// List navigation
	listItems []string
	options   []domain.SubjectOption
	cursor    int

	// Chapter name input
	chapterInput textinput.Model

	// Part editor state
	partIndex  int
	partInputs [fieldCount]textinput.Model
	partFocus  int

	// Outcome
	created int
	status  string
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new compose wizard view. A non-nil batch resumes from
// that state; otherwise a fresh batch with one empty part is used.
func NewView(
	s *styles.Styles,
	catalog driving.CatalogService,
	publish driving.PublishService,
	drafts driving.DraftService,
	flow string,
	batch *domain.ChapterBatch,
	draftID string,
) *View {
	if batch == nil {
		batch = domain.NewChapterBatch()
	}

	chapterInput := textinput.New()
	chapterInput.Placeholder = "Chapter name"
	chapterInput.CharLimit = 200
	chapterInput.SetValue(batch.ChapterName)

	var partInputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{
		"Part title",
		"YouTube link (watch, share, shorts or embed)",
		"Notes link (optional)",
		"Description (optional)",
	}
	for i := range partInputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 500
		partInputs[i] = in
	}

	return &View{
		styles:       s,
		keys:         keymap.DefaultKeyMap(),
		catalog:      catalog,
		publish:      publish,
		drafts:       drafts,
		ctx:          context.Background(),
		flow:         flow,
		draftID:      draftID,
		step:         StepLoading,
		batch:        batch,
		chapterInput: chapterInput,
		partInputs:   partInputs,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	if ctx != nil {
		v.ctx = ctx
	}
}

// Init initialises the view. The edit flow already carries a loaded batch
// and starts on the parts editor; the create flow loads the catalogue
// first.
func (v *View) Init() tea.Cmd {
	if v.flow == domain.FlowEdit {
		v.step = StepEditParts
		v.cursor = 0
		return nil
	}
	return v.loadSubjects()
}

// loadSubjects returns a command that fetches the subject catalogue.
func (v *View) loadSubjects() tea.Cmd {
	return func() tea.Msg {
		subjects, err := v.catalog.Subjects(v.ctx)
		return messages.SubjectsLoaded{Subjects: subjects, Err: err}
	}
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Step returns the current wizard step.
func (v *View) Step() WizardStep {
	return v.step
}

// Batch returns the batch under composition.
func (v *View) Batch() *domain.ChapterBatch {
	return v.batch
}

// Err returns the error that should outlive the session. Validation
// notices are screen-only feedback, not failures, so they are excluded;
// publish and load errors come back so the command can report them after
// the alternate screen is torn down.
func (v *View) Err() error {
	var vErr *domain.ValidationError
	if errors.As(v.err, &vErr) {
		return nil
	}
	return v.err
}

// Update handles messages for the compose wizard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SubjectsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.step = StepComplete
			return v, nil
		}
		v.subjects = msg.Subjects
		// A resumed draft already carries a subject; jump to the parts
		// editor. Taxonomy steps stay reachable through esc.
		if v.batch.SubjectID != "" && v.batch.ChapterName != "" {
			v.selection.Reconcile(v.subjects)
			v.step = StepEditParts
			v.cursor = 0
			return v, nil
		}
		v.enterDepartmentStep()
		return v, nil

	case messages.DraftSaved:
		if msg.Err != nil {
			v.status = v.styles.Error.Render(fmt.Sprintf("draft save failed: %v", msg.Err))
			return v, nil
		}
		v.draftID = msg.Draft.ID
		v.status = v.styles.Success.Render(fmt.Sprintf("Draft %q saved", msg.Draft.Name))
		return v, nil

	case messages.DraftDeleted:
		// Cleanup after publish; nothing to show either way.
		return v, nil

	case messages.PublishFinished:
		return v.handlePublishFinished(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handlePublishFinished routes the publish outcome. Failures return to the
// parts editor with the batch untouched so the user can correct and
// resubmit.
func (v *View) handlePublishFinished(msg messages.PublishFinished) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.step = StepEditParts
		v.cursor = 0
		return v, nil
	}
	v.err = nil
	v.created = msg.Created
	v.step = StepComplete
	if v.draftID != "" && v.drafts != nil {
		return v, v.deleteDraft()
	}
	return v, nil
}

// handleKeyMsg handles key presses based on the current step.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.step {
	case StepLoading, StepSubmitting:
		return v, nil
	case StepSelectDepartment, StepSelectYear, StepSelectSubject:
		return v.handleListKey(msg)
	case StepEnterChapter:
		return v.handleChapterKey(msg)
	case StepEditParts:
		return v.handlePartsKey(msg)
	case StepEditPart:
		return v.handlePartEditKey(msg)
	case StepConfirm:
		return v.handleConfirmKey(msg)
	case StepComplete:
		if key.Matches(msg, v.keys.Select) || key.Matches(msg, v.keys.Back) || msg.String() == "q" {
			return v, quitCmd()
		}
	}
	return v, nil
}

func quitCmd() tea.Cmd {
	return func() tea.Msg { return messages.Quit{} }
}

// handleListKey drives the three cascading selection lists.
func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.listItems)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Back):
		switch v.step {
		case StepSelectDepartment:
			return v, quitCmd()
		case StepSelectYear:
			v.enterDepartmentStep()
		case StepSelectSubject:
			v.enterYearStep()
		}
	case key.Matches(msg, v.keys.Select):
		if v.cursor < 0 || v.cursor >= len(v.listItems) {
			return v, nil
		}
		switch v.step {
		case StepSelectDepartment:
			v.selection.SetDepartment(v.listItems[v.cursor])
			v.batch.SubjectID = ""
			v.enterYearStep()
		case StepSelectYear:
			v.selection.SetYearLevel(v.listItems[v.cursor])
			v.batch.SubjectID = ""
			v.enterSubjectStep()
		case StepSelectSubject:
			v.selection.SetSubject(v.options[v.cursor].Value, v.subjects)
			v.batch.SubjectID = v.selection.SubjectID
			v.step = StepEnterChapter
			return v, v.chapterInput.Focus()
		}
	}
	return v, nil
}

func (v *View) enterDepartmentStep() {
	v.step = StepSelectDepartment
	v.listItems = domain.DepartmentOptions(v.subjects)
	v.cursor = indexOf(v.listItems, v.selection.Department)
}

func (v *View) enterYearStep() {
	v.step = StepSelectYear
	v.listItems = domain.YearOptions(v.subjects, v.selection.Department)
	v.cursor = indexOf(v.listItems, v.selection.YearLevel)
}

func (v *View) enterSubjectStep() {
	v.step = StepSelectSubject
	v.options = domain.SubjectOptions(v.subjects, v.selection.Department, v.selection.YearLevel, nil)
	v.listItems = make([]string, len(v.options))
	v.cursor = 0
	for i, opt := range v.options {
		v.listItems[i] = opt.Label
		if opt.Value == v.selection.SubjectID {
			v.cursor = i
		}
	}
}

func indexOf(items []string, value string) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return 0
}

// handleChapterKey drives the chapter name input.
func (v *View) handleChapterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.chapterInput.Blur()
		v.enterSubjectStep()
		return v, nil
	case key.Matches(msg, v.keys.Select):
		name := strings.TrimSpace(v.chapterInput.Value())
		if name == "" {
			v.status = v.styles.Error.Render("Chapter name is required")
			return v, nil
		}
		v.batch.ChapterName = name
		v.status = ""
		v.chapterInput.Blur()
		v.step = StepEditParts
		v.cursor = 0
		return v, nil
	}
	var cmd tea.Cmd
	v.chapterInput, cmd = v.chapterInput.Update(msg)
	return v, cmd
}

// handlePartsKey drives the parts editor list.
func (v *View) handlePartsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.batch.Parts)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Back):
		if v.flow == domain.FlowEdit {
			return v, quitCmd()
		}
		v.step = StepEnterChapter
		return v, v.chapterInput.Focus()
	case key.Matches(msg, v.keys.AddPart):
		v.batch.AddPart()
		v.cursor = len(v.batch.Parts) - 1
	case key.Matches(msg, v.keys.RemovePart):
		if !v.batch.RemovePart(v.cursor) {
			v.status = v.styles.Warning.Render("A chapter keeps at least one part")
			return v, nil
		}
		if v.cursor >= len(v.batch.Parts) {
			v.cursor = len(v.batch.Parts) - 1
		}
		v.status = ""
	case key.Matches(msg, v.keys.ToggleFree):
		v.batch.UpdatePart(v.cursor, func(p *domain.VideoPart) {
			p.IsFree = !p.IsFree
		})
	case key.Matches(msg, v.keys.SaveDraft):
		return v, v.saveDraft()
	case key.Matches(msg, v.keys.Publish):
		if err := v.batch.Validate(); err != nil {
			v.err = err
			return v, nil
		}
		v.err = nil
		v.step = StepConfirm
		return v, nil
	case key.Matches(msg, v.keys.Select):
		v.openPartEditor(v.cursor)
		return v, v.partInputs[fieldTitle].Focus()
	}
	return v, nil
}

// openPartEditor loads the part at index into the edit inputs.
func (v *View) openPartEditor(index int) {
	if index < 0 || index >= len(v.batch.Parts) {
		return
	}
	part := v.batch.Parts[index]
	v.partIndex = index
	v.partFocus = fieldTitle
	v.partInputs[fieldTitle].SetValue(part.Title)
	v.partInputs[fieldVideoURL].SetValue(part.VideoURL)
	v.partInputs[fieldNoteLink].SetValue(part.NoteLink)
	v.partInputs[fieldDescription].SetValue(part.Description)
	for i := range v.partInputs {
		v.partInputs[i].Blur()
	}
	v.step = StepEditPart
}

// commitPartEditor writes the edit inputs back to the part.
func (v *View) commitPartEditor() {
	v.batch.UpdatePart(v.partIndex, func(p *domain.VideoPart) {
		p.Title = strings.TrimSpace(v.partInputs[fieldTitle].Value())
		p.VideoURL = strings.TrimSpace(v.partInputs[fieldVideoURL].Value())
		p.NoteLink = strings.TrimSpace(v.partInputs[fieldNoteLink].Value())
		p.Description = strings.TrimSpace(v.partInputs[fieldDescription].Value())
	})
	for i := range v.partInputs {
		v.partInputs[i].Blur()
	}
	v.step = StepEditParts
	v.cursor = v.partIndex
}

// handlePartEditKey drives the part field inputs.
func (v *View) handlePartEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.commitPartEditor()
		return v, nil
	case key.Matches(msg, v.keys.NextField):
		if v.partFocus == fieldCount-1 {
			break
		}
		v.partFocus++
		return v, v.updatePartFocus()
	case key.Matches(msg, v.keys.PrevField):
		if v.partFocus == 0 {
			break
		}
		v.partFocus--
		return v, v.updatePartFocus()
	case key.Matches(msg, v.keys.Select):
		if v.partFocus < fieldCount-1 {
			v.partFocus++
			return v, v.updatePartFocus()
		}
		v.commitPartEditor()
		return v, nil
	}
	var cmd tea.Cmd
	v.partInputs[v.partFocus], cmd = v.partInputs[v.partFocus].Update(msg)
	return v, cmd
}

func (v *View) updatePartFocus() tea.Cmd {
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range v.partInputs {
		if i == v.partFocus {
			cmds = append(cmds, v.partInputs[i].Focus())
		} else {
			v.partInputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// handleConfirmKey drives the confirmation step.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.step = StepSubmitting
		return v, v.submit()
	case "n", "N", "esc":
		v.step = StepEditParts
		return v, nil
	}
	return v, nil
}

// submit returns a command that performs the write. The confirmation
// already happened on the confirm step, so the update hook answers yes.
func (v *View) submit() tea.Cmd {
	batch := v.batch
	flow := v.flow
	ctx := v.ctx
	publish := v.publish
	return func() tea.Msg {
		if flow == domain.FlowEdit {
			confirmed := func(string) (bool, error) { return true, nil }
			err := publish.Update(ctx, batch, confirmed)
			return messages.PublishFinished{Created: len(batch.Parts), Err: err}
		}
		created, err := publish.Create(ctx, batch, driving.PublishOptions{})
		return messages.PublishFinished{Created: created, Err: err}
	}
}

// saveDraft returns a command that persists the composer state.
func (v *View) saveDraft() tea.Cmd {
	if v.drafts == nil {
		v.status = v.styles.Warning.Render("Draft storage is not configured")
		return nil
	}
	draft := domain.Draft{
		ID:    v.draftID,
		Name:  v.batch.ChapterName,
		Flow:  v.flow,
		Batch: *v.batch,
	}
	drafts := v.drafts
	ctx := v.ctx
	return func() tea.Msg {
		saved, err := drafts.Save(ctx, draft)
		return messages.DraftSaved{Draft: saved, Err: err}
	}
}

// deleteDraft returns a command that removes the draft after publishing.
func (v *View) deleteDraft() tea.Cmd {
	drafts := v.drafts
	ctx := v.ctx
	id := v.draftID
	return func() tea.Msg {
		err := drafts.Delete(ctx, id)
		return messages.DraftDeleted{ID: id, Err: err}
	}
}

// View renders the wizard.
func (v *View) View() string {
	var b strings.Builder

	switch v.step {
	case StepLoading:
		b.WriteString(v.styles.Title.Render("Compose chapter"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Loading subjects..."))

	case StepSelectDepartment:
		v.renderList(&b, "Select department", "No departments available")

	case StepSelectYear:
		v.renderList(&b, fmt.Sprintf("Select year level (%s)", v.selection.Department), "No year levels in this department")

	case StepSelectSubject:
		v.renderList(&b, fmt.Sprintf("Select subject (%s, %s)", v.selection.Department, v.selection.YearLevel), "No subjects for this year level")

	case StepEnterChapter:
		b.WriteString(v.styles.Title.Render("Chapter name"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.InputField.Render(v.chapterInput.View()))
		b.WriteString("\n")
		if v.status != "" {
			b.WriteString(v.status)
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Help.Render("enter continue • esc back"))

	case StepEditParts:
		v.renderParts(&b)

	case StepEditPart:
		v.renderPartEditor(&b)

	case StepConfirm:
		v.renderConfirm(&b)

	case StepSubmitting:
		b.WriteString(v.styles.Title.Render("Publishing"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Submitting %d part(s)...", len(v.batch.Parts))))

	case StepComplete:
		v.renderComplete(&b)
	}

	return b.String()
}

func (v *View) renderList(b *strings.Builder, title, empty string) {
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")
	if len(v.listItems) == 0 {
		b.WriteString(v.styles.Muted.Render(empty))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("esc back"))
		return
	}
	for i, item := range v.listItems {
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render("> " + item))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("↑/↓ move • enter select • esc back"))
}

func (v *View) renderParts(b *strings.Builder) {
	title := fmt.Sprintf("Parts — %s", v.batch.ChapterName)
	if v.batch.ChapterName == "" {
		title = "Parts"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i, part := range v.batch.Parts {
		label := part.Title
		if label == "" {
			label = v.styles.Muted.Render("(untitled)")
		}
		free := ""
		if part.IsFree {
			free = v.styles.Subtitle.Render(" [free]")
		}
		line := fmt.Sprintf("Part %d: %s%s", part.PartNumber, label, free)
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(errorSummary(v.err)))
		b.WriteString("\n")
	}
	if v.status != "" {
		b.WriteString(v.status)
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Help.Render("enter edit • a add • x remove • f toggle free • s save draft • p publish • esc back"))
}

func (v *View) renderPartEditor(b *strings.Builder) {
	part := v.batch.Parts[v.partIndex]
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Edit part %d", part.PartNumber)))
	b.WriteString("\n\n")
	labels := [fieldCount]string{"Title", "Video URL", "Notes link", "Description"}
	for i := range v.partInputs {
		label := labels[i]
		if i == v.partFocus {
			b.WriteString(v.styles.Subtitle.Render(label))
		} else {
			b.WriteString(v.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.partInputs[i].View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("tab next field • enter done • esc done"))
}

func (v *View) renderConfirm(b *strings.Builder) {
	b.WriteString(v.styles.Title.Render("Confirm"))
	b.WriteString("\n\n")
	var prompt string
	if v.flow == domain.FlowEdit {
		prompt = fmt.Sprintf("Replace all parts of chapter %q with %d part(s)?", v.batch.ChapterName, len(v.batch.Parts))
	} else {
		prompt = fmt.Sprintf("Upload %d part(s) to chapter %q?", len(v.batch.Parts), v.batch.ChapterName)
	}
	b.WriteString(v.styles.Normal.Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("y/enter confirm • n/esc back"))
}

func (v *View) renderComplete(b *strings.Builder) {
	if v.err != nil {
		b.WriteString(v.styles.Title.Render("Error"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render(errorSummary(v.err)))
	} else if v.flow == domain.FlowEdit {
		b.WriteString(v.styles.Title.Render("Done"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Chapter %q updated with %d part(s).", v.batch.ChapterName, v.created)))
	} else {
		b.WriteString(v.styles.Title.Render("Done"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Uploaded %d part(s) to chapter %q.", v.created, v.batch.ChapterName)))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("enter exit"))
}

// errorSummary flattens an error for single-screen display, keeping the
// partial-publish accounting visible.
func errorSummary(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		lines := make([]string, 0, len(vErr.Issues)+1)
		lines = append(lines, "The batch is not ready to publish:")
		for _, issue := range vErr.Issues {
			lines = append(lines, "  - "+issue)
		}
		return strings.Join(lines, "\n")
	}
	var pErr *domain.PartialPublishError
	if errors.As(err, &pErr) {
		return fmt.Sprintf("Saved %d of %d parts before the failure; the remaining parts were not submitted.\n%v",
			pErr.Succeeded, pErr.Total, pErr.Err)
	}
	return err.Error()
}
