// Package assignments implements the state machine governing a project's
// assignee field. A project starts available and transitions to assigned at
// most once; nothing short of deleting the record moves it back.
package assignments

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/dbx"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/projects"
)

// Service owns the claim transaction logic. It uses the project repository
// for record access but holds the database handle itself so the conditional
// update and its disambiguating read share one transaction.
type Service struct {
	db *sql.DB
}

// NewService returns a Service bound to the given database.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Claim assigns the project to the given user.
//
// The transition is a single conditional update ("set assignee where
// assignee is absent"), so two concurrent claims on the same available
// project cannot both succeed: exactly one wins and the other observes
// common.ErrorAlreadyAssigned. A missing project fails with
// common.ErrorNotFound. Reclaiming a project one already holds also fails
// with ErrorAlreadyAssigned.
//
// The user id is not validated against the users table; the unenforced
// reference is a documented property of the data model.
func (s *Service) Claim(ctx context.Context, projectID, userID int64) error {
	if projectID <= 0 {
		return fmt.Errorf("%w: project id must be a positive number", common.ErrorValidation)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: user id must be a positive number", common.ErrorValidation)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := projects.NewSQLiteRepository(tx)

		claimed, err := repo.ClaimAvailable(ctx, projectID, userID)
		if err != nil {
			return err
		}
		if claimed {
			return nil
		}

		// Zero rows changed: the project is either gone or already taken.
		// The follow-up read is race-free here because there is no
		// transition out of the assigned state.
		if _, err := repo.GetByID(ctx, projectID); err != nil {
			return err
		}
		return common.ErrorAlreadyAssigned
	})
}
