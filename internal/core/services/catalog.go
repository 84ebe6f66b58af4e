package services

import (
	"context"
	"fmt"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
	"github.com/edustack-labs/coursectl/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves the subject catalogue and the cascading option
// sets derived from it. The catalogue is fetched once and cached for the
// lifetime of the service; Refresh discards the cache.
type CatalogService struct {
	api driven.ContentAPI

	subjects []domain.Subject
	fetched  bool
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(api driven.ContentAPI) *CatalogService {
	return &CatalogService{api: api}
}

// Subjects returns the full catalogue, fetching it on first use.
func (s *CatalogService) Subjects(ctx context.Context) ([]domain.Subject, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if !s.fetched {
		subjects, err := s.api.FetchSubjects(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch subjects: %w", err)
		}
		logger.Debug("catalogue loaded: %d subjects", len(subjects))
		s.subjects = subjects
		s.fetched = true
	}
	return s.subjects, nil
}

// Refresh refetches the catalogue, discarding the cached copy.
func (s *CatalogService) Refresh(ctx context.Context) error {
	s.fetched = false
	s.subjects = nil
	_, err := s.Subjects(ctx)
	return err
}

// Departments returns the selectable departments.
func (s *CatalogService) Departments(ctx context.Context) ([]string, error) {
	subjects, err := s.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DepartmentOptions(subjects), nil
}

// Years returns the selectable year levels within a department.
func (s *CatalogService) Years(ctx context.Context, department string) ([]string, error) {
	subjects, err := s.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.YearOptions(subjects, department), nil
}

// SubjectChoices returns the selectable subjects for a department and year
// level, excluding the given IDs.
func (s *CatalogService) SubjectChoices(
	ctx context.Context, department, yearLevel string, excludeIDs []string,
) ([]domain.SubjectOption, error) {
	subjects, err := s.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SubjectOptions(subjects, department, yearLevel, excludeIDs), nil
}
