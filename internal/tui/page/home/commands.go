package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/scan"
)

const loadTimeout = 5 * time.Second

type LoadMsg struct {
	Stats  scan.Stats
	Recent []scan.Scan
	Err    error
}

// LoadCmd fetches the stats card and the recent scans list concurrently.
func LoadCmd(ctx context.Context, repo *repository.Repository) tea.Cmd {
	if repo == nil {
		return func() tea.Msg {
			return LoadMsg{}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()

		var msg LoadMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			stats, err := repo.Scans.Stats(gctx)
			msg.Stats = stats
			return err
		})
		g.Go(func() error {
			recent, err := repo.Scans.List(gctx, repository.RecentLimit)
			msg.Recent = recent
			return err
		})
		msg.Err = g.Wait()
		return msg
	}
}
