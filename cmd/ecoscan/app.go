package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/config"
	"github.com/garrettladley/ecoscan/internal/db"
	"github.com/garrettladley/ecoscan/internal/paths"
	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

// app holds what every command shares once the root pre-run has finished.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	logFile io.Closer
	// dbPath is set by openRepository.
	dbPath string
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logPath, err := paths.Log()
	if err != nil {
		return err
	}

	logger, closer, err := xslog.NewFileLogger(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(slog.String("command", cmd.Name()))
	a.logFile = closer

	cmd.SetContext(xslog.WithLogger(cmd.Context(), a.logger))
	return nil
}

func (a *app) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) openRepository(ctx context.Context) (*sql.DB, *repository.Repository, error) {
	dbPath, err := paths.DB(a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.Open(ctx, dbPath, xslog.FromContext(ctx))
	if err != nil {
		return nil, nil, err
	}

	a.dbPath = dbPath
	return sqlDB, repository.New(sqlDB), nil
}
