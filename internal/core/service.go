package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service wires the pure normalization pipeline to the import-run history
// store for use by transport layers (HTTP handlers, CLI). The pipeline
// itself never touches the database; only run summaries are persisted.
type Service struct {
	normalizer *Normalizer
	pool       *pgxpool.Pool // nil disables run history
}

// NewService creates a Service. pool may be nil, in which case imports
// still work but no run history is recorded.
func NewService(pool *pgxpool.Pool, diag Sink) *Service {
	return &Service{
		normalizer: NewNormalizer(diag),
		pool:       pool,
	}
}

// Normalizer exposes the underlying pipeline for callers that want the
// pure functions without history (e.g. the validate-only endpoint).
func (s *Service) Normalizer() *Normalizer { return s.normalizer }

// HistoryEnabled reports whether import runs are being recorded.
func (s *Service) HistoryEnabled() bool { return s.pool != nil }

// ImportResult bundles everything one import run produced.
type ImportResult struct {
	RunID    string             `json:"run_id,omitempty"`
	Envelope map[string]any     `json:"payload"`
	Reports  []ValidationReport `json:"reports"`
	Stats    Statistics         `json:"stats"`
	Duration time.Duration      `json:"-"`
}

// Import runs the full pipeline over a raw payload and, when history is
// enabled, records a run summary. A history write failure is logged but
// never fails the import; the normalized envelope is the product, the
// history row is bookkeeping.
func (s *Service) Import(ctx context.Context, raw any, sourceName string) (*ImportResult, error) {
	start := time.Now()

	envelope, reports, err := s.normalizer.BuildEnvelope(raw)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Envelope: envelope,
		Reports:  reports,
		Duration: time.Since(start),
	}
	if meta, ok := asObject(envelope["meta"]); ok {
		if stats, ok := meta["counts"].(Statistics); ok {
			result.Stats = stats
		}
	}

	if s.pool != nil {
		runID, err := s.recordRun(ctx, sourceName, result)
		if err != nil {
			s.normalizer.diag.Warn("failed to record import run",
				"source", sourceName,
				"error", err,
			)
		} else {
			result.RunID = runID
		}
	}

	return result, nil
}
