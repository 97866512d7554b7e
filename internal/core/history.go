package core

// history.go persists import-run summaries so operators can review past
// imports ("import with warnings" vs "rejected") from the admin API.
// Only summaries are stored; normalized payloads are never persisted here.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RunRecord is one row of import-run history.
type RunRecord struct {
	ID            string    `json:"id"`
	SourceName    string    `json:"source_name"`
	Regions       int       `json:"regions"`
	Treks         int       `json:"treks"`
	ValidTreks    int       `json:"valid_treks"`
	ErrorCount    int       `json:"error_count"`
	WarningCount  int       `json:"warning_count"`
	ItineraryDays int       `json:"itinerary_days"`
	DaysWithGPS   int       `json:"days_with_gps"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrRunNotFound is returned by GetRun for unknown run IDs.
var ErrRunNotFound = errors.New("import run not found")

// EnsureSchema creates the import_runs table if it does not exist.
// Called once at startup when history is enabled.
func (s *Service) EnsureSchema(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS import_runs (
			id UUID PRIMARY KEY,
			source_name TEXT NOT NULL,
			regions INT NOT NULL,
			treks INT NOT NULL,
			valid_treks INT NOT NULL,
			error_count INT NOT NULL,
			warning_count INT NOT NULL,
			itinerary_days INT NOT NULL,
			days_with_gps INT NOT NULL,
			duration_ms BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure import_runs schema: %w", err)
	}
	return nil
}

// recordRun inserts a summary row for a completed import and returns its ID.
func (s *Service) recordRun(ctx context.Context, sourceName string, result *ImportResult) (string, error) {
	validTreks, errorCount, warningCount := 0, 0, 0
	for _, r := range result.Reports {
		if r.Valid {
			validTreks++
		}
		errorCount += len(r.Errors)
		warningCount += len(r.Warnings)
	}

	id := uuid.New().String()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO import_runs (
			id, source_name, regions, treks, valid_treks,
			error_count, warning_count, itinerary_days, days_with_gps, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, sourceName,
		result.Stats.Regions, result.Stats.Treks, validTreks,
		errorCount, warningCount,
		result.Stats.TotalItineraryDays, result.Stats.DaysWithGPS,
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("insert import run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent import runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit < 1 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, source_name, regions, treks, valid_treks,
		       error_count, warning_count, itinerary_days, days_with_gps,
		       duration_ms, created_at
		FROM import_runs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query import runs: %w", err)
	}
	defer rows.Close()

	runs := make([]RunRecord, 0, limit)
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.SourceName, &rec.Regions, &rec.Treks, &rec.ValidTreks,
			&rec.ErrorCount, &rec.WarningCount, &rec.ItineraryDays, &rec.DaysWithGPS,
			&rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan import run: %w", err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return runs, nil
}

// GetRun returns a single import run by ID.
func (s *Service) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid run ID: %w", err)
	}

	var rec RunRecord
	err = s.pool.QueryRow(ctx, `
		SELECT id, source_name, regions, treks, valid_treks,
		       error_count, warning_count, itinerary_days, days_with_gps,
		       duration_ms, created_at
		FROM import_runs
		WHERE id = $1`, parsed.String()).Scan(
		&rec.ID, &rec.SourceName, &rec.Regions, &rec.Treks, &rec.ValidTreks,
		&rec.ErrorCount, &rec.WarningCount, &rec.ItineraryDays, &rec.DaysWithGPS,
		&rec.DurationMs, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query import run: %w", err)
	}
	return &rec, nil
}
