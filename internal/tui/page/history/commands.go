package history

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/scan"
)

type LoadMsg struct {
	Scans []scan.Scan
	Err   error
}

func LoadCmd(ctx context.Context, repo *repository.Repository) tea.Cmd {
	if repo == nil {
		return func() tea.Msg {
			return LoadMsg{}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		scans, err := repo.Scans.List(ctx, repository.DefaultPageSize)
		return LoadMsg{Scans: scans, Err: err}
	}
}
