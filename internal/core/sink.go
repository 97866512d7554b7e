package core

// sink.go decouples the pure normalization logic from any particular
// logging mechanism. Diagnostics are informational only: nothing emitted
// through a Sink may affect pipeline output values.

import "log/slog"

// Sink receives diagnostics emitted during normalization.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Info reports a normalization event (e.g. GPS coverage summary).
	Info(msg string, args ...any)

	// Warn reports a non-fatal finding (e.g. a coordinate dropped to null).
	Warn(msg string, args ...any)
}

// slogSink adapts a slog.Logger to the Sink interface.
type slogSink struct {
	log *slog.Logger
}

// NewSlogSink returns a Sink backed by the given structured logger.
func NewSlogSink(log *slog.Logger) Sink {
	return slogSink{log: log}
}

func (s slogSink) Info(msg string, args ...any) { s.log.Info(msg, args...) }
func (s slogSink) Warn(msg string, args ...any) { s.log.Warn(msg, args...) }

// nopSink discards all diagnostics.
type nopSink struct{}

// NopSink returns a Sink that discards everything. Useful for callers
// that only care about the returned envelope and reports.
func NopSink() Sink { return nopSink{} }

func (nopSink) Info(string, ...any) {}
func (nopSink) Warn(string, ...any) {}

func defaultSink() Sink {
	return slogSink{log: slog.Default()}
}
