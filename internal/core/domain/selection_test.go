package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSubjects() []Subject {
	return []Subject{
		{ID: "s1", Title: "Calculus 1", Code: "MATH101", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s2", Title: "Linear Algebra", Code: "MATH102", Department: "Mathematics", YearLevel: "Year 1"},
		{ID: "s3", Title: "Real Analysis", Code: "MATH201", Department: "Mathematics", YearLevel: "Year 2"},
		{ID: "s4", Title: "Mechanics", Code: "PHYS101", Department: "Physics", YearLevel: "Year 1"},
	}
}

func TestSetDepartment_ClearsDownstream(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")
	sel.SetYearLevel("Year 1")
	sel.SetSubject("s1", subjects)
	assert.True(t, sel.Complete())

	sel.SetDepartment("Physics")

	assert.Equal(t, "Physics", sel.Department)
	assert.Empty(t, sel.YearLevel)
	assert.Empty(t, sel.SubjectID)
}

func TestSetYearLevel_ClearsSubject(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")
	sel.SetYearLevel("Year 1")
	sel.SetSubject("s1", subjects)

	sel.SetYearLevel("Year 2")

	assert.Equal(t, "Year 2", sel.YearLevel)
	assert.Empty(t, sel.SubjectID)
}

func TestSetYearLevel_IgnoredWithoutDepartment(t *testing.T) {
	var sel Selection
	sel.SetYearLevel("Year 1")
	assert.Empty(t, sel.YearLevel)
}

func TestSetSubject_RejectsMismatchedTaxonomy(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")
	sel.SetYearLevel("Year 1")

	// s3 exists but belongs to Year 2.
	sel.SetSubject("s3", subjects)
	assert.Empty(t, sel.SubjectID)

	// s4 exists but belongs to Physics.
	sel.SetSubject("s4", subjects)
	assert.Empty(t, sel.SubjectID)

	sel.SetSubject("s2", subjects)
	assert.Equal(t, "s2", sel.SubjectID)
}

func TestSetSubject_IgnoredWithoutYearLevel(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")

	sel.SetSubject("s1", subjects)

	assert.Empty(t, sel.SubjectID)
}

func TestReconcile_DropsStaleSubject(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")
	sel.SetYearLevel("Year 1")
	sel.SetSubject("s1", subjects)

	// Catalogue refetched without s1.
	sel.Reconcile(subjects[1:])

	assert.Empty(t, sel.SubjectID)
	assert.Equal(t, "Mathematics", sel.Department)
	assert.Equal(t, "Year 1", sel.YearLevel)
}

func TestReconcile_KeepsValidSubject(t *testing.T) {
	subjects := testSubjects()
	var sel Selection
	sel.SetDepartment("Mathematics")
	sel.SetYearLevel("Year 1")
	sel.SetSubject("s1", subjects)

	sel.Reconcile(subjects)

	assert.Equal(t, "s1", sel.SubjectID)
}

// Consistency must hold after any sequence of setter calls.
func TestSelection_ConsistentAfterAnySetterSequence(t *testing.T) {
	subjects := testSubjects()
	departments := []string{"", "Mathematics", "Physics"}
	years := []string{"", "Year 1", "Year 2"}
	ids := []string{"", "s1", "s3", "s4", "missing"}

	for _, d := range departments {
		for _, y := range years {
			for _, id := range ids {
				var sel Selection
				sel.SetDepartment(d)
				sel.SetYearLevel(y)
				sel.SetSubject(id, subjects)
				assert.True(t, sel.Consistent(),
					"inconsistent after SetDepartment(%q), SetYearLevel(%q), SetSubject(%q): %+v", d, y, id, sel)
			}
		}
	}
}
