package repository

import (
	"context"
	"database/sql"

	"github.com/garrettladley/ecoscan/internal/scan"
)

type Repository struct {
	Scans ScanRepository
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Scans: &scanRepo{db: db},
	}
}

const (
	DefaultPageSize = 50
	RecentLimit     = 5
)

type ScanRepository interface {
	Create(ctx context.Context, s *scan.Scan) error
	// Get returns nil, nil when no scan has the id.
	Get(ctx context.Context, id string) (*scan.Scan, error)
	// List returns at most limit scans, newest first.
	List(ctx context.Context, limit int) ([]scan.Scan, error)
	Stats(ctx context.Context) (scan.Stats, error)
	Delete(ctx context.Context, id string) error
}
