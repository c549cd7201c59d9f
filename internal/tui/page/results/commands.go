package results

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/scan"
)

type LoadMsg struct {
	ID   string
	Scan *scan.Scan // nil when no stored scan has ID
	Err  error
}

func LoadCmd(ctx context.Context, repo *repository.Repository, id string) tea.Cmd {
	if repo == nil {
		return func() tea.Msg {
			return LoadMsg{ID: id}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		s, err := repo.Scans.Get(ctx, id)
		return LoadMsg{ID: id, Scan: s, Err: err}
	}
}
