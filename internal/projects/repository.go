package projects

import "context"

// Repository persists project rows.
//
// Update and Delete deliberately treat a missing id as silent success;
// callers who need to distinguish should Get first.
type Repository interface {
	// Create inserts an unassigned project and returns the generated id.
	Create(ctx context.Context, p *Project) (int64, error)

	// GetByID returns the project or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*Project, error)

	// GetAll lists every project ordered by id ascending.
	GetAll(ctx context.Context) ([]Project, error)

	// Update changes the title and/or description. Nil fields are left
	// untouched; both nil is a no-op that still succeeds.
	Update(ctx context.Context, id int64, title, description *string) error

	// Delete removes the row regardless of assignment state.
	Delete(ctx context.Context, id int64) error

	// Report lists projects matching the filter, ordered by id ascending.
	// It returns an empty slice when nothing matches.
	Report(ctx context.Context, filter StatusFilter) ([]Project, error)

	// ClaimAvailable sets the assignee in a single conditional update and
	// reports whether a row actually transitioned. False means the project
	// is either missing or already assigned.
	ClaimAvailable(ctx context.Context, id, userID int64) (bool, error)
}
