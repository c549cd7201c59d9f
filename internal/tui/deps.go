package tui

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/ecoscan/internal/auth"
	"github.com/garrettladley/ecoscan/internal/config"
	"github.com/garrettladley/ecoscan/internal/repository"
	"github.com/garrettladley/ecoscan/internal/toast"
)

type Deps struct {
	Ctx         context.Context
	Logger      *slog.Logger
	Config      config.Config
	Clock       clockwork.Clock
	NewID       func() string
	Toasts      *toast.Queue
	Repository  *repository.Repository
	AuthChecker auth.Checker
	// DBPath is the resolved scan database, shown in development builds.
	DBPath string
	// ImagePath is the receipt passed on the command line. When set, scanning
	// starts as soon as the splash screen ends.
	ImagePath string
}
