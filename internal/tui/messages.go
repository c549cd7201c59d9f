package tui

import "github.com/garrettladley/ecoscan/internal/scan"

type AuthStatusMsg struct {
	Authenticated bool
	Err           error
}

// ToastsChangedMsg is sent whenever the toast queue contents change.
type ToastsChangedMsg struct{}

type ScanSavedMsg struct {
	Scan scan.Scan
	Err  error
}

type ScanDeletedMsg struct {
	ID  string
	Err error
}
