//go:build !release

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

func addDevCommands(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(seedCmd(a))
}

func seedCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store sample scans for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sqlDB, repo, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			now := time.Now()
			for i := range count {
				s := scan.Sample(uuid.NewString(), "", now.Add(-time.Duration(i)*24*time.Hour))
				if err := repo.Scans.Create(ctx, &s); err != nil {
					return fmt.Errorf("failed to seed scan: %w", err)
				}
				xslog.FromContext(ctx).DebugContext(ctx, "seeded scan", xslog.ScanID(s.ID))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d scans\n", count)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of sample scans to store")
	return cmd
}
