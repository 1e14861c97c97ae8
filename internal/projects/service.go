package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
)

// Service validates inputs and delegates to a Repository.
type Service struct {
	repo Repository
}

// NewService returns a Service bound to the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a new project, which starts unassigned.
func (s *Service) Create(ctx context.Context, title, description string, orgRef int64) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%w: description must not be empty", common.ErrorValidation)
	}
	if orgRef <= 0 {
		return 0, fmt.Errorf("%w: organization reference must be a positive number", common.ErrorValidation)
	}

	return s.repo.Create(ctx, &Project{Title: title, Description: description, OrgRef: orgRef})
}

// List returns every project ordered by id ascending.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a single project or common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be a positive number", common.ErrorValidation)
	}
	return s.repo.GetByID(ctx, id)
}

// Update changes the title and/or description. Present fields must be
// non-empty. A request with neither field is a no-op that still succeeds,
// as is an update of an id that does not exist.
func (s *Service) Update(ctx context.Context, id int64, title, description *string) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive number", common.ErrorValidation)
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return fmt.Errorf("%w: description must not be empty", common.ErrorValidation)
	}

	return s.repo.Update(ctx, id, title, description)
}

// Delete removes the project regardless of its assignment state. Deleting an
// id that does not exist succeeds silently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive number", common.ErrorValidation)
	}
	return s.repo.Delete(ctx, id)
}

// Report lists projects matching the status filter, ordered by id.
func (s *Service) Report(ctx context.Context, filter StatusFilter) ([]Project, error) {
	return s.repo.Report(ctx, filter)
}
