// Package cli implements the interactive shell: menus, prompts, and
// rendering. All business rules live in the services it calls into; the
// shell only shapes input and presents results.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/assignments"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/cli/config"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/logging"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/projects"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/store"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/users"
)

// userService is the credential-store surface the shell needs.
type userService interface {
	Register(ctx context.Context, id int64, name string, password []byte) error
	Authenticate(ctx context.Context, id int64, password []byte) (*users.User, error)
}

// projectService is the project-repository surface the shell needs.
type projectService interface {
	Create(ctx context.Context, title, description string, orgRef int64) (int64, error)
	List(ctx context.Context) ([]projects.Project, error)
	Update(ctx context.Context, id int64, title, description *string) error
	Delete(ctx context.Context, id int64) error
	Report(ctx context.Context, filter projects.StatusFilter) ([]projects.Project, error)
}

// assignmentService is the claim surface the shell needs.
type assignmentService interface {
	Claim(ctx context.Context, projectID, userID int64) error
}

// App holds the shell's collaborators and the current session. The logged-in
// user lives only in memory; there is no token or persisted session.
type App struct {
	config      *config.Config
	logger      logging.Logger
	users       userService
	projects    projectService
	assignments assignmentService

	user   *users.User
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// NewApp opens the store at the configured path and wires the services.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err.Error())
		return nil, err
	}

	return &App{
		config:      cfg,
		logger:      logger,
		users:       users.NewService(users.NewSQLiteRepository(db)),
		projects:    projects.NewService(projects.NewSQLiteRepository(db)),
		assignments: assignments.NewService(db),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		db:          db,
	}, nil
}

// Run starts the root menu loop and closes the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
