package users

import "context"

// Repository persists user rows. Accounts are created once and read per
// login attempt; there is no update or delete path.
type Repository interface {
	// Create inserts the user. A duplicate id fails with
	// common.ErrorDuplicateID without mutating the existing row.
	Create(ctx context.Context, user *User) error

	// GetByID returns the user or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*User, error)
}
