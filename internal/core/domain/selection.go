package domain

// Selection is the transient department → year level → subject cascade used
// when choosing where a chapter belongs. Each field is only meaningful when
// the field before it in the cascade is set and consistent with it; the
// setters enforce that by clearing everything downstream of a change.
type Selection struct {
	Department string
	YearLevel  string
	SubjectID  string
}

// SetDepartment selects a department and invalidates the dependent fields.
func (sel *Selection) SetDepartment(department string) {
	sel.Department = department
	sel.YearLevel = ""
	sel.SubjectID = ""
}

// SetYearLevel selects a year level and invalidates the subject.
// Ignored while no department is selected.
func (sel *Selection) SetYearLevel(yearLevel string) {
	if sel.Department == "" {
		return
	}
	sel.YearLevel = yearLevel
	sel.SubjectID = ""
}

// SetSubject selects a subject from the candidate set. The subject must
// exist and its own department and year level must match the selection
// exactly; otherwise the call is ignored and the subject stays unset.
func (sel *Selection) SetSubject(id string, subjects []Subject) {
	if sel.Department == "" || sel.YearLevel == "" {
		return
	}
	for _, s := range subjects {
		if s.ID == id && s.Department == sel.Department && s.YearLevel == sel.YearLevel {
			sel.SubjectID = id
			return
		}
	}
	sel.SubjectID = ""
}

// Reconcile drops a selected subject that no longer appears in the candidate
// set, e.g. after the catalogue was refetched. A stale subject must never
// survive as a display value.
func (sel *Selection) Reconcile(subjects []Subject) {
	if sel.SubjectID == "" {
		return
	}
	for _, s := range subjects {
		if s.ID == sel.SubjectID && s.Department == sel.Department && s.YearLevel == sel.YearLevel {
			return
		}
	}
	sel.SubjectID = ""
}

// Complete reports whether all three cascade levels are chosen.
func (sel Selection) Complete() bool {
	return sel.Department != "" && sel.YearLevel != "" && sel.SubjectID != ""
}

// Consistent reports whether no field is set while its prerequisite is empty.
// It holds after any sequence of setter calls.
func (sel Selection) Consistent() bool {
	if sel.YearLevel != "" && sel.Department == "" {
		return false
	}
	if sel.SubjectID != "" && (sel.Department == "" || sel.YearLevel == "") {
		return false
	}
	return true
}
