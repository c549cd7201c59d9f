package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func deleteCmd(a *app) *cobra.Command {
	var missingOK bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored scan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sqlDB, repo, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			return deleteScan(ctx, repo, cmd.OutOrStdout(), args[0], missingOK)
		},
	}

	cmd.Flags().BoolVar(&missingOK, "missing-ok", false, "succeed when the scan does not exist")
	return cmd
}

func deleteScan(ctx context.Context, repo *repository.Repository, w io.Writer, id string, missingOK bool) error {
	err := repo.Scans.Delete(ctx, id)
	switch {
	case apperr.IsNotFound(err) && missingOK:
		_, err = fmt.Fprintf(w, "scan %s does not exist\n", id)
		return err
	case err != nil:
		return err
	}

	xslog.FromContext(ctx).InfoContext(ctx, "scan deleted", xslog.ScanID(id))
	_, err = fmt.Fprintf(w, "deleted scan %s\n", id)
	return err
}
