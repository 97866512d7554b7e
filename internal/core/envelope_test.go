package core

import (
	"encoding/json"
	"errors"
	"testing"
)

// ============================================================================
// Envelope Totality
// ============================================================================

func TestBuildEnvelope_EmptyPayload(t *testing.T) {
	n := newTestNormalizer()

	envelope, reports, err := n.BuildEnvelope(map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}

	meta, ok := envelope["meta"].(map[string]any)
	if !ok {
		t.Fatal("expected meta object in envelope")
	}
	for _, field := range []string{
		"schema_version", "format", "mode", "generated_by", "generated_at",
		"generator_version", "counts", "validation", "options", "source", "processing",
	} {
		if _, ok := meta[field]; !ok {
			t.Errorf("expected meta.%s to be populated", field)
		}
	}
	if meta["mode"] != "replace_nested" {
		t.Errorf("expected default mode replace_nested, got %v", meta["mode"])
	}

	if regions := envelope["regions"].([]any); len(regions) != 0 {
		t.Errorf("expected empty regions, got %v", regions)
	}
	if treks := envelope["treks"].([]any); len(treks) != 0 {
		t.Errorf("expected empty treks, got %v", treks)
	}
}

func TestBuildEnvelope_IsJSONSerializable(t *testing.T) {
	n := newTestNormalizer()
	envelope, _, err := n.BuildEnvelope(map[string]any{
		"treks": []any{legacyTrek()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := json.Marshal(envelope); err != nil {
		t.Errorf("envelope must be JSON-serializable: %v", err)
	}
}

// ============================================================================
// Fatal Propagation
// ============================================================================

func TestBuildEnvelope_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil payload", nil, "null"},
		{"string payload", "not a payload", "string"},
		{"array payload", []any{}, "array"},
		{"number payload", float64(5), "number"},
	}

	n := newTestNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := n.BuildEnvelope(tt.in)

			var ipe *InvalidPayloadError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected InvalidPayloadError, got %v", err)
			}
			if ipe.Got != tt.want {
				t.Errorf("expected shape %q in error, got %q", tt.want, ipe.Got)
			}
		})
	}
}

func TestBuildEnvelope_BadTrekAbortsBatch(t *testing.T) {
	n := newTestNormalizer()

	_, _, err := n.BuildEnvelope(map[string]any{
		"treks": []any{
			map[string]any{"slug": "ok", "title": "Fine"},
			"this is not a trek record",
		},
	})

	var tne *TrekNormalizationError
	if !errors.As(err, &tne) {
		t.Fatalf("expected TrekNormalizationError, got %v", err)
	}
	if tne.Index != 2 {
		t.Errorf("expected 1-based index 2, got %d", tne.Index)
	}
}

// ============================================================================
// Meta Merging
// ============================================================================

func TestBuildEnvelope_CallerMetaWinsFieldByField(t *testing.T) {
	n := newTestNormalizer()

	envelope, _, err := n.BuildEnvelope(map[string]any{
		"meta": map[string]any{
			"mode":   "merge",
			"source": map[string]any{"type": "api", "user": "ops"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := envelope["meta"].(map[string]any)
	if meta["mode"] != "merge" {
		t.Errorf("expected caller mode to win, got %v", meta["mode"])
	}
	if meta["format"] != "trek-catalog" {
		t.Errorf("expected default format to remain, got %v", meta["format"])
	}

	// Caller replaced the source sub-object wholesale; defaults still
	// backfill the sub-objects the caller did not provide.
	source := meta["source"].(map[string]any)
	if source["user"] != "ops" {
		t.Errorf("expected caller source.user, got %v", source["user"])
	}
	if _, ok := meta["processing"].(map[string]any); !ok {
		t.Errorf("expected processing sub-object backfilled, got %v", meta["processing"])
	}
	if _, ok := meta["validation"].(map[string]any); !ok {
		t.Errorf("expected validation sub-object backfilled, got %v", meta["validation"])
	}
}

func TestBuildEnvelope_CountsAreOwnedByBuilder(t *testing.T) {
	n := newTestNormalizer()

	envelope, _, err := n.BuildEnvelope(map[string]any{
		"meta":    map[string]any{"counts": map[string]any{"treks": float64(999)}},
		"regions": []any{map[string]any{"slug": "khumbu"}},
		"treks":   []any{map[string]any{"slug": "a", "title": "A"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := envelope["meta"].(map[string]any)
	counts, ok := meta["counts"].(Statistics)
	if !ok {
		t.Fatalf("expected computed Statistics in meta.counts, got %T", meta["counts"])
	}
	if counts.Treks != 1 || counts.Regions != 1 {
		t.Errorf("expected recomputed counts, got %+v", counts)
	}
}

// ============================================================================
// Report Collection
// ============================================================================

func TestBuildEnvelope_CollectsReportsPerTrek(t *testing.T) {
	n := newTestNormalizer()

	_, reports, err := n.BuildEnvelope(map[string]any{
		"treks": []any{
			map[string]any{"slug": "good", "title": "Good Trek"},
			map[string]any{"slug": "no-title"},
		},
	})
	if err != nil {
		t.Fatalf("validation findings must not abort the batch: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if !reports[0].Valid {
		t.Errorf("expected first trek valid, errors: %v", reports[0].Errors)
	}
	if reports[1].Valid {
		t.Error("expected second trek invalid (missing title)")
	}
}

func TestTrekNormalizationError_Identifies(t *testing.T) {
	err := &TrekNormalizationError{Index: 3, Slug: "ebc", Err: errors.New("boom")}
	msg := err.Error()
	if msg != "trek 3 (ebc): boom" {
		t.Errorf("unexpected error message: %q", msg)
	}
	if !errors.Is(err, err.Err) {
		t.Error("expected Unwrap to expose the cause")
	}
}
