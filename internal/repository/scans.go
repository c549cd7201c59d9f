package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/scan"
)

type scanRepo struct {
	db *sql.DB
}

const scanColumns = `id, store_name, image_path, scanned_at, score, items_json, recommendations_json`

func (r *scanRepo) Create(ctx context.Context, s *scan.Scan) error {
	itemsJSON, err := go_json.Marshal(nonNil(s.Items))
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	recsJSON, err := go_json.Marshal(nonNil(s.Recommendations))
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO scans (`+scanColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.StoreName,
		s.ImagePath,
		s.ScannedAt.UnixMilli(),
		s.Score,
		string(itemsJSON),
		string(recsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan %s: %w", s.ID, err)
	}
	return nil
}

func (r *scanRepo) Get(ctx context.Context, id string) (*scan.Scan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scanColumns+` FROM scans WHERE id = ?`, id)
	s, err := r.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scanRepo) List(ctx context.Context, limit int) ([]scan.Scan, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scanColumns+` FROM scans ORDER BY scanned_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scans := make([]scan.Scan, 0, limit)
	for rows.Next() {
		s, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}
	return scans, nil
}

func (r *scanRepo) Stats(ctx context.Context) (scan.Stats, error) {
	var stats scan.Stats
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(AVG(score), 0) FROM scans`).
		Scan(&stats.TotalScans, &stats.AverageScore)
	if err != nil {
		return scan.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// Delete removes the scan with id. It returns an apperr not-found error when
// no such scan is stored.
func (r *scanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scan %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete scan %s: %w", id, err)
	}
	if n == 0 {
		return apperr.NotFound("scan_not_found", "scan "+id+" not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *scanRepo) scanRow(row rowScanner) (*scan.Scan, error) {
	var (
		s         scan.Scan
		scannedAt int64
		itemsJSON string
		recsJSON  string
	)
	if err := row.Scan(&s.ID, &s.StoreName, &s.ImagePath, &scannedAt, &s.Score, &itemsJSON, &recsJSON); err != nil {
		return nil, err
	}

	s.ScannedAt = time.UnixMilli(scannedAt).UTC()
	if err := go_json.Unmarshal([]byte(itemsJSON), &s.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items for scan %s: %w", s.ID, err)
	}
	if err := go_json.Unmarshal([]byte(recsJSON), &s.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations for scan %s: %w", s.ID, err)
	}
	return &s, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
