package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *Project) (int64, error) {
	query := `INSERT INTO projects (title, description, assignee_id, org_ref) VALUES (?, ?, NULL, ?)`

	res, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.OrgRef)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*Project, error) {
	query := `SELECT id, title, description, assignee_id, org_ref FROM projects WHERE id = ?`

	p := &Project{}
	var assignee sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &assignee, &p.OrgRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select project: %w", err)
	}
	if assignee.Valid {
		p.AssigneeID = &assignee.Int64
	}
	return p, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Project, error) {
	query := `SELECT id, title, description, assignee_id, org_ref FROM projects ORDER BY id`
	return r.selectProjects(ctx, query)
}

// Update changes the requested fields. A request with both fields nil is a
// no-op that reports success; so is an update of a nonexistent id. Both
// permissive behaviors are part of the repository contract.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, title, description *string) error {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if title != nil {
		set = append(set, "title = ?")
		args = append(args, *title)
	}
	if description != nil {
		set = append(set, "description = ?")
		args = append(args, *description)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE projects SET %s WHERE id = ?`, strings.Join(set, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes the row unconditionally. Deleting an assigned project also
// discards the assignment; deleting a missing id succeeds silently.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Report(ctx context.Context, filter StatusFilter) ([]Project, error) {
	where := "assignee_id IS NULL"
	if filter == StatusAssigned {
		where = "assignee_id IS NOT NULL"
	}

	query := fmt.Sprintf(
		`SELECT id, title, description, assignee_id, org_ref FROM projects WHERE %s ORDER BY id`, where)
	return r.selectProjects(ctx, query)
}

// ClaimAvailable performs the claim transition as one conditional statement,
// so two concurrent claims on the same project cannot both observe it
// available. The assignee is not validated against the users table.
func (r *SQLiteRepository) ClaimAvailable(ctx context.Context, id, userID int64) (bool, error) {
	query := `UPDATE projects SET assignee_id = ? WHERE id = ? AND assignee_id IS NULL`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *SQLiteRepository) selectProjects(ctx context.Context, query string, args ...any) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	result := make([]Project, 0)
	for rows.Next() {
		var p Project
		var assignee sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &assignee, &p.OrgRef); err != nil {
			return nil, err
		}
		if assignee.Valid {
			p.AssigneeID = &assignee.Int64
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
