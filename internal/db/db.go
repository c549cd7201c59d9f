package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/ecoscan/internal/migrations"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

const driverName = "sqlite3"

// Open opens the SQLite database at path and brings its schema up to date.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	dsn := "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY between them
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	applied, err := migrations.Apply(ctx, sqlDB, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.DebugContext(ctx, "database ready", xslog.Path(path), xslog.Count(applied))
	return sqlDB, nil
}
