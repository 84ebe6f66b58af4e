package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// countingContentAPI counts FetchSubjects calls on top of the fake.
type countingContentAPI struct {
	fakeContentAPI
	fetches int
}

func (c *countingContentAPI) FetchSubjects(ctx context.Context) ([]domain.Subject, error) {
	c.fetches++
	return c.fakeContentAPI.FetchSubjects(ctx)
}

func catalogueFixture() []domain.Subject {
	return []domain.Subject{
		{ID: "s1", Title: "Calculus 1", Code: "MATH101", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s2", Title: "Linear Algebra", Code: "MATH102", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s3", Title: "Mechanics", Code: "PHYS101", Department: "Physics", YearLevel: "Year 1"},
	}
}

func TestSubjects_CachesAfterFirstFetch(t *testing.T) {
	api := &countingContentAPI{fakeContentAPI: fakeContentAPI{subjects: catalogueFixture()}}
	svc := NewCatalogService(api)
	ctx := context.Background()

	first, err := svc.Subjects(ctx)
	require.NoError(t, err)
	second, err := svc.Subjects(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.fetches)
}

func TestRefresh_DiscardsCache(t *testing.T) {
	api := &countingContentAPI{fakeContentAPI: fakeContentAPI{subjects: catalogueFixture()}}
	svc := NewCatalogService(api)
	ctx := context.Background()

	_, err := svc.Subjects(ctx)
	require.NoError(t, err)

	api.subjects = catalogueFixture()[:1]
	require.NoError(t, svc.Refresh(ctx))

	subjects, err := svc.Subjects(ctx)
	require.NoError(t, err)
	assert.Len(t, subjects, 1)
	assert.Equal(t, 2, api.fetches)
}

func TestSubjects_FetchError(t *testing.T) {
	api := &fakeContentAPI{fetchErr: errors.New("boom")}
	svc := NewCatalogService(api)

	_, err := svc.Subjects(context.Background())

	assert.Error(t, err)
}

func TestDepartments(t *testing.T) {
	svc := NewCatalogService(&fakeContentAPI{subjects: catalogueFixture()})

	departments, err := svc.Departments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Mathematics", "Physics"}, departments)
}

func TestYears(t *testing.T) {
	svc := NewCatalogService(&fakeContentAPI{subjects: catalogueFixture()})

	years, err := svc.Years(context.Background(), "Mathematics")

	require.NoError(t, err)
	assert.Equal(t, []string{"Year 1"}, years)
}

func TestSubjectChoices_AppliesExclusions(t *testing.T) {
	svc := NewCatalogService(&fakeContentAPI{subjects: catalogueFixture()})

	choices, err := svc.SubjectChoices(context.Background(), "Mathematics", "Year 1", []string{"s2"})

	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, "s1", choices[0].Value)
	assert.Equal(t, "[MATH101] Calculus 1", choices[0].Label)
}
