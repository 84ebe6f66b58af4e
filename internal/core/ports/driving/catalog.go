package driving

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

// CatalogService exposes the subject catalogue and the cascading
// department → year level → subject option sets derived from it.
type CatalogService interface {
	// Subjects returns the full catalogue, fetching it on first use.
	Subjects(ctx context.Context) ([]domain.Subject, error)

	// Refresh refetches the catalogue, discarding the cached copy.
	Refresh(ctx context.Context) error

	// Departments returns the selectable departments.
	Departments(ctx context.Context) ([]string, error)

	// Years returns the selectable year levels within a department.
	Years(ctx context.Context, department string) ([]string, error)

	// SubjectChoices returns the selectable subjects for a department and
	// year level, excluding the given IDs.
	SubjectChoices(ctx context.Context, department, yearLevel string, excludeIDs []string) ([]domain.SubjectOption, error)
}
