package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func showCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one stored scan",
		Long: "Prints the stored scan with the given id. Unknown ids fall back to the sample result " +
			"unless --strict is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			fail := func(err error) error {
				if asJSON {
					_ = apperr.WriteJSON(w, err)
				}
				return err
			}

			sqlDB, repo, err := a.openRepository(ctx)
			if err != nil {
				return fail(err)
			}
			defer func() { _ = sqlDB.Close() }()

			s, err := lookupScan(ctx, repo, cmd.ErrOrStderr(), args[0], strict)
			if err != nil {
				return fail(err)
			}

			if asJSON {
				return writeJSON(w, s)
			}
			printScan(w, s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of showing the sample for unknown ids")
	return cmd
}

// lookupScan loads id from repo. A missing id is a not-found error when
// strict, and otherwise resolves to the sample result with a notice on errw.
func lookupScan(ctx context.Context, repo *repository.Repository, errw io.Writer, id string, strict bool) (scan.Scan, error) {
	found, err := repo.Scans.Get(ctx, id)
	if err != nil {
		return scan.Scan{}, apperr.Internal("load_failed", "could not load the scan", err)
	}
	if found != nil {
		return *found, nil
	}

	if strict {
		return scan.Scan{}, apperr.NotFound("scan_not_found", "scan "+id+" not found")
	}
	xslog.FromContext(ctx).WarnContext(ctx, "scan not found, showing sample", xslog.ScanID(id))
	fmt.Fprintf(errw, "scan %s not found, showing the sample result\n", id)
	return scan.Sample(id, "", time.Now()), nil
}
