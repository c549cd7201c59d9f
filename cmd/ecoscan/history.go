package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/repository"
)

func historyCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored scans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			sqlDB, repo, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			scans, err := repo.Scans.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list scans: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(scans) == 0 {
				_, err := fmt.Fprintln(w, "No scans yet. Run `ecoscan scan <image>` to add one.")
				return err
			}

			_, err = lipgloss.Fprintln(w, historyTable(scans))
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", repository.DefaultPageSize, "maximum number of scans to show")
	return cmd
}
