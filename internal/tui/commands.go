package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/ecoscan/internal/auth"
	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/toast"
)

func checkAuthCmd(ctx context.Context, checker auth.Checker) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		ok, err := checker.IsAuthenticated(ctx)
		return AuthStatusMsg{Authenticated: ok, Err: err}
	}
}

// listenToastsCmd blocks until the queue changes. It must be re-issued after
// every ToastsChangedMsg to keep listening; it returns nil once the queue is
// closed.
func listenToastsCmd(q *toast.Queue) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-q.Changes(); !ok {
			return nil
		}
		return ToastsChangedMsg{}
	}
}

func saveScanCmd(ctx context.Context, repo *repository.Repository, s scan.Scan) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ScanSavedMsg{Scan: s}
		}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		err := repo.Scans.Create(ctx, &s)
		return ScanSavedMsg{Scan: s, Err: err}
	}
}

func deleteScanCmd(ctx context.Context, repo *repository.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ScanDeletedMsg{ID: id}
		}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return ScanDeletedMsg{ID: id, Err: repo.Scans.Delete(ctx, id)}
	}
}
