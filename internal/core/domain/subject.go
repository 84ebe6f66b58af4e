package domain

import "fmt"

// Subject is a purchasable academic unit (e.g., "Calculus 1") belonging to
// a department and year level. Subjects are fetched from the content API and
// are read-only from coursectl's perspective.
type Subject struct {
	// ID is the unique identifier assigned by the backend.
	ID string

	// Title is the human-readable subject name.
	Title string

	// Code is the short subject code (e.g., "CS101"). May be empty.
	Code string

	// Department is the academic department the subject belongs to.
	// Treated as an opaque string; the backend defines the actual values.
	Department string

	// YearLevel is the academic year within the department.
	YearLevel string

	// OriginalPrice is the list price.
	OriginalPrice float64

	// OfferPrice is the discounted price, if any.
	OfferPrice float64

	// CourseID references the course the subject is sold under, if any.
	CourseID string
}

// OptionLabel returns the display label used in selection lists.
// The subject code disambiguates subjects with similar titles; when the
// code is absent "N/A" stands in.
func (s Subject) OptionLabel() string {
	code := s.Code
	if code == "" {
		code = "N/A"
	}
	return fmt.Sprintf("[%s] %s", code, s.Title)
}

// SubjectOption is one selectable entry in a subject list.
type SubjectOption struct {
	// Value is the subject ID.
	Value string

	// Label is the display text, see Subject.OptionLabel.
	Label string
}
