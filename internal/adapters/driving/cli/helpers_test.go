package cli

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

// fakeCatalog serves a fixed catalogue.
type fakeCatalog struct {
	subjects []domain.Subject
	err      error
}

var _ driving.CatalogService = (*fakeCatalog)(nil)

func (f *fakeCatalog) Subjects(context.Context) ([]domain.Subject, error) {
	return f.subjects, f.err
}

func (f *fakeCatalog) Refresh(context.Context) error { return f.err }

func (f *fakeCatalog) Departments(context.Context) ([]string, error) {
	return domain.DepartmentOptions(f.subjects), f.err
}

func (f *fakeCatalog) Years(_ context.Context, department string) ([]string, error) {
	return domain.YearOptions(f.subjects, department), f.err
}

func (f *fakeCatalog) SubjectChoices(
	_ context.Context, department, yearLevel string, excludeIDs []string,
) ([]domain.SubjectOption, error) {
	return domain.SubjectOptions(f.subjects, department, yearLevel, excludeIDs), f.err
}

// fakePublish records publish calls. Confirmation hooks are exercised the
// way the real service does it: asked before any write, declining cancels.
type fakePublish struct {
	createBatch *domain.ChapterBatch
	createN     int
	createErr   error

	updateBatch *domain.ChapterBatch
	updateErr   error

	chapter *domain.ChapterBatch
	loadErr error
}

var _ driving.PublishService = (*fakePublish)(nil)

func (f *fakePublish) Create(
	_ context.Context, batch *domain.ChapterBatch, opts driving.PublishOptions,
) (int, error) {
	if err := batch.Validate(); err != nil {
		return 0, err
	}
	if opts.Confirm != nil {
		ok, err := opts.Confirm("confirm?")
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, domain.ErrPublishCancelled
		}
	}
	if f.createErr != nil {
		return f.createN, f.createErr
	}
	f.createBatch = batch
	return len(batch.Parts), nil
}

func (f *fakePublish) Update(
	_ context.Context, batch *domain.ChapterBatch, confirm driving.ConfirmFunc,
) error {
	if confirm == nil {
		return domain.ErrInvalidInput
	}
	ok, err := confirm("confirm?")
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPublishCancelled
	}
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateBatch = batch
	return nil
}

func (f *fakePublish) Load(_ context.Context, chapterID string) (*domain.ChapterBatch, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.chapter != nil {
		return f.chapter, nil
	}
	batch := domain.NewChapterBatch()
	batch.ChapterID = chapterID
	return batch, nil
}

// fakeDrafts is a map-backed DraftService.
type fakeDrafts struct {
	drafts  map[string]domain.Draft
	deleted []string
}

var _ driving.DraftService = (*fakeDrafts)(nil)

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{drafts: make(map[string]domain.Draft)}
}

func (f *fakeDrafts) Save(_ context.Context, draft domain.Draft) (domain.Draft, error) {
	if draft.ID == "" {
		draft.ID = "draft-1"
	}
	f.drafts[draft.ID] = draft
	return draft, nil
}

func (f *fakeDrafts) Get(_ context.Context, id string) (*domain.Draft, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &draft, nil
}

func (f *fakeDrafts) List(context.Context) ([]domain.Draft, error) {
	result := make([]domain.Draft, 0, len(f.drafts))
	for _, d := range f.drafts {
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeDrafts) Delete(_ context.Context, id string) error {
	delete(f.drafts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func cliSubjectsFixture() []domain.Subject {
	return []domain.Subject{
		{ID: "s1", Title: "Calculus 1", Code: "MATH101", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s2", Title: "Linear Algebra", Code: "MATH102", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s3", Title: "Mechanics", Code: "PHYS101", Department: "Physics", YearLevel: "Year 2"},
	}
}

// setupTestServices swaps the injected services for fakes and resets flag
// state. The returned cleanup restores everything.
func setupTestServices() func() {
	prevCatalog, prevPublish, prevDrafts, prevConfig :=
		catalogService, publishService, draftService, configStore

	catalogService = &fakeCatalog{subjects: cliSubjectsFixture()}
	publishService = &fakePublish{}
	draftService = newFakeDrafts()

	return func() {
		catalogService = prevCatalog
		publishService = prevPublish
		draftService = prevDrafts
		configStore = prevConfig

		subjectsDepartment = ""
		subjectsYear = ""
		subjectsExclude = nil
		uploadFile = ""
		uploadConfirm = false
		editFile = ""
		authLoginURL = ""

		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}
