package projects

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE projects (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  title       TEXT NOT NULL,
  description TEXT NOT NULL,
  assignee_id INTEGER NULL,
  org_ref     INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func seed(t *testing.T, r *SQLiteRepository, title string) int64 {
	t.Helper()
	id, err := r.Create(context.Background(), &Project{Title: title, Description: "desc", OrgRef: 12345678000190})
	require.NoError(t, err)
	return id
}

func TestCreateAndGetByID_StartsUnassigned(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, &Project{Title: "IoT Sensor", Description: "desc", OrgRef: 12345678000190})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "IoT Sensor", got.Title)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, int64(12345678000190), got.OrgRef)
	assert.Nil(t, got.AssigneeID)
	assert.False(t, got.Assigned())
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), 99)
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestGetAll_OrderedByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	seed(t, r, "first")
	seed(t, r, "second")
	seed(t, r, "third")

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "first", got[0].Title)
}

func TestUpdate_Fields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	id := seed(t, r, "orig")

	title := "new title"
	require.NoError(t, r.Update(ctx, id, &title, nil))
	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "desc", got.Description)

	desc := "new desc"
	require.NoError(t, r.Update(ctx, id, nil, &desc))
	got, err = r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "new desc", got.Description)

	title2, desc2 := "both title", "both desc"
	require.NoError(t, r.Update(ctx, id, &title2, &desc2))
	got, err = r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "both title", got.Title)
	assert.Equal(t, "both desc", got.Description)
}

func TestUpdate_NoFieldsIsNoOp(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	id := seed(t, r, "orig")

	require.NoError(t, r.Update(ctx, id, nil, nil))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
}

func TestUpdate_MissingIDSilentSuccess(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	title := "anything"
	require.NoError(t, r.Update(context.Background(), 99, &title, nil))
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	id := seed(t, r, "doomed")

	require.NoError(t, r.Delete(ctx, id))

	_, err := r.GetByID(ctx, id)
	require.True(t, errors.Is(err, common.ErrorNotFound))

	// Deleting again is still a silent success.
	require.NoError(t, r.Delete(ctx, id))
}

func TestDelete_AssignedProject(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	id := seed(t, r, "claimed")

	claimed, err := r.ClaimAvailable(ctx, id, 1001)
	require.NoError(t, err)
	require.True(t, claimed)

	// Unconditional delete discards the assignment with the row.
	require.NoError(t, r.Delete(ctx, id))
	_, err = r.GetByID(ctx, id)
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestReport_Partitions(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	a := seed(t, r, "available one")
	b := seed(t, r, "taken")
	c := seed(t, r, "available two")

	claimed, err := r.ClaimAvailable(ctx, b, 1001)
	require.NoError(t, err)
	require.True(t, claimed)

	available, err := r.Report(ctx, StatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, a, available[0].ID)
	assert.Equal(t, c, available[1].ID)

	assigned, err := r.Report(ctx, StatusAssigned)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, b, assigned[0].ID)
	require.NotNil(t, assigned[0].AssigneeID)
	assert.Equal(t, int64(1001), *assigned[0].AssigneeID)
}

func TestReport_EmptyResultIsNotAnError(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Report(context.Background(), StatusAssigned)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClaimAvailable(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	id := seed(t, r, "wanted")

	claimed, err := r.ClaimAvailable(ctx, id, 1001)
	require.NoError(t, err)
	assert.True(t, claimed)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, int64(1001), *got.AssigneeID)

	// Second claim affects zero rows, even for the same user.
	claimed, err = r.ClaimAvailable(ctx, id, 1001)
	require.NoError(t, err)
	assert.False(t, claimed)

	// Missing project also reports false.
	claimed, err = r.ClaimAvailable(ctx, 99, 1001)
	require.NoError(t, err)
	assert.False(t, claimed)
}
