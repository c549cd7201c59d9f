package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/processing"
	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func scanCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Process a receipt without the TUI",
		Long:  "Validates the receipt image, runs the processing stages, stores the result and prints it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.runScan(cmd.Context(), cmd.OutOrStdout(), args[0], asJSON)
			if err != nil && asJSON {
				_ = apperr.WriteJSON(cmd.OutOrStdout(), err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored record as JSON")
	return cmd
}

func (a *app) runScan(ctx context.Context, w io.Writer, imagePath string, asJSON bool) error {
	logger := xslog.FromContext(ctx)

	abs, err := scan.ValidateImage(imagePath)
	if err != nil {
		return err
	}

	tracker, err := processing.NewTracker()
	if err != nil {
		return apperr.Internal("tracker_failed", "failed to build the processing tracker", err)
	}

	var last *processing.Phase
	runner := processing.NewRunner(tracker,
		processing.WithInterval(a.cfg.TickInterval),
		processing.WithLogger(logger),
		processing.OnUpdate(func(s processing.Snapshot) {
			if asJSON || (last != nil && *last == s.Phase) {
				return
			}
			phase := s.Phase
			last = &phase
			fmt.Fprintf(w, "[%3.0f%%] %s (stage: %s)\n", s.Percent, phase.Message(), s.Stage.Name)
		}),
	)

	if err := runner.Start(ctx); err != nil {
		return apperr.Internal("runner_failed", "failed to start processing", err)
	}
	select {
	case <-runner.Done():
	case <-ctx.Done():
		runner.Cancel()
		<-runner.Done()
	}

	snap := runner.Snapshot()
	if !snap.Complete {
		return fmt.Errorf("scan cancelled at %.0f%%: %w", snap.Percent, context.Cause(ctx))
	}
	if !asJSON {
		fmt.Fprintf(w, "[100%%] done in %s\n", snap.Elapsed.Round(time.Millisecond))
	}

	sqlDB, repo, err := a.openRepository(ctx)
	if err != nil {
		return apperr.Internal("store_unavailable", "could not open the scan history", err)
	}
	defer func() { _ = sqlDB.Close() }()

	result := scan.Sample(uuid.NewString(), abs, time.Now())
	if err := repo.Scans.Create(ctx, &result); err != nil {
		return apperr.Internal("save_failed", "could not save the scan", err)
	}
	logger.InfoContext(ctx, "scan stored", xslog.ScanID(result.ID), xslog.Path(abs))

	if asJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintln(w)
	printScan(w, result)
	return nil
}
