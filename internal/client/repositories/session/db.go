package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/myflix/myflix-client/internal/client/migrations"
	"github.com/myflix/myflix-client/internal/logging"

	_ "modernc.org/sqlite"
)

// gooseLogger routes goose progress messages into our logger.
type gooseLogger struct {
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Debug(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.logger.Error(context.Background(), msg)
	panic(msg)
}

func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and applies
// migrations. The pool is limited to one connection: SQLite allows a single
// writer and the store already serializes its own writes.
func InitDatabase(ctx context.Context, dsn string, logger logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
