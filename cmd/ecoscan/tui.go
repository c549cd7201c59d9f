package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/auth"
	"github.com/garrettladley/ecoscan/internal/toast"
	"github.com/garrettladley/ecoscan/internal/tui"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := xslog.FromContext(ctx)

	sqlDB, repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	var imagePath string
	if len(args) > 0 {
		imagePath = args[0]
	}

	clock := clockwork.NewRealClock()
	toasts := toast.New(
		toast.WithClock(clock),
		toast.WithTTL(a.cfg.ToastTTL),
		toast.WithLogger(logger),
	)
	defer toasts.Close()

	deps := tui.Deps{
		Ctx:         ctx,
		Logger:      logger,
		Config:      a.cfg,
		Clock:       clock,
		Toasts:      toasts,
		Repository:  repo,
		AuthChecker: auth.NewEnvChecker(a.cfg.APIKey),
		DBPath:      a.dbPath,
		ImagePath:   imagePath,
	}
	model := tui.New(deps)

	p := tea.NewProgram(&model, tea.WithContext(ctx))

	logger.InfoContext(ctx, "tui started", xslog.Path(imagePath), xslog.TTL(toasts.TTL()))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
