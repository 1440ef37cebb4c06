package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/myflix/myflix-client/internal/client/client"
	"github.com/myflix/myflix-client/internal/client/config"
	"github.com/myflix/myflix-client/internal/client/repositories/session"
	"github.com/myflix/myflix-client/internal/client/services"
	"github.com/myflix/myflix-client/internal/filex"
	"github.com/myflix/myflix-client/internal/logging"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	authService  services.AuthService
	movieService services.MovieService
	reader       *bufio.Reader
	out          io.Writer
	now          func() time.Time
}

// NewApp opens the session database at cfg.SessionDBPath and wires the API
// client and services on top of it. Close releases the database.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(cfg.SessionDBPath); err != nil {
		return nil, fmt.Errorf("prepare session dir: %w", err)
	}

	db, err := session.InitDatabase(ctx, cfg.SessionDBPath, logger)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "path", cfg.SessionDBPath, "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db, logger)

	apiClient, err := client.NewHTTPClient(cfg, store, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:       cfg,
		logger:       logger,
		db:           db,
		authService:  services.NewAuthService(apiClient, store, logger),
		movieService: services.NewMovieService(apiClient, store),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		now:          time.Now,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run greets the user, drops an expired session and blocks in the REPL
// until exit, EOF or ctx cancellation.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to myFlix CLI (type 'help' for commands)")

	sess := a.authService.CurrentUser(ctx)
	switch {
	case sess.Valid() && sess.Expired(a.now()):
		a.logger.Info(ctx, "stored session token has expired", "username", sess.Username())
		if err := a.authService.Logout(ctx); err != nil {
			a.logger.Warn(ctx, "could not clear expired session", "error", err)
		}
		a.println("Your session has expired; please log in again.")
	case sess.Valid():
		a.printf("Logged in as %s.\n", sess.Username())
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.CurrentUser(ctx).Valid()
}

func (a *App) getStatus(ctx context.Context) string {
	if name := a.authService.CurrentUser(ctx).Username(); name != "" {
		return "(" + name + ")"
	}
	return ""
}

// reportError prints the user-facing message of err. An auth failure while
// a session is stored means the token is no longer accepted, so the session
// is dropped.
func (a *App) reportError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	a.logger.Debug(ctx, "command failed", "error", err)
	a.println("Error:", client.Message(err))

	if errors.Is(err, client.ErrUnauthorized) && !errors.Is(err, session.ErrNoSession) && a.isLoggedIn(ctx) {
		if err := a.authService.Logout(ctx); err != nil {
			a.logger.Warn(ctx, "could not clear rejected session", "error", err)
			return
		}
		a.println("Your session is no longer valid; please log in again.")
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
