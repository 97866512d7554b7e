package core

// envelope.go assembles the final import payload: { meta, regions, treks }.
//
// The meta envelope is always fully populated. Caller-supplied meta fields
// win over defaults field-by-field; any validation/options/source/processing
// sub-object still missing after the merge is backfilled wholesale with its
// default. meta.counts is owned here: it is written exactly once per run
// from the aggregator's output, overwriting anything the caller supplied.

import (
	"fmt"
	"time"
)

// InvalidPayloadError reports a payload that is not an object. This is
// the single hard precondition of the whole pipeline.
type InvalidPayloadError struct {
	Got string // shape of the offending value, e.g. "string" or "null"
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid import payload: expected an object, got %s", e.Got)
}

// TrekNormalizationError wraps a per-trek normalization failure with the
// trek's 1-based position and identifying slug/title. One bad trek aborts
// the whole batch; normalization failures are never partial.
type TrekNormalizationError struct {
	Index int    // 1-based position in the input
	Slug  string // identifying slug, if the record had one
	Title string // identifying title, if the record had one
	Err   error
}

func (e *TrekNormalizationError) Error() string {
	id := e.Slug
	if id == "" {
		id = e.Title
	}
	if id == "" {
		id = "unidentified"
	}
	return fmt.Sprintf("trek %d (%s): %v", e.Index, id, e.Err)
}

func (e *TrekNormalizationError) Unwrap() error { return e.Err }

// BuildEnvelope normalizes a raw import payload into its canonical form.
//
// It returns the envelope, one ValidationReport per trek in input order,
// and an error only for fatal/structural failures (*InvalidPayloadError,
// *TrekNormalizationError). Validation findings never abort the batch;
// they are collected in the reports for the caller to act on.
func (n *Normalizer) BuildEnvelope(raw any) (map[string]any, []ValidationReport, error) {
	payload, ok := asObject(raw)
	if !ok {
		return nil, nil, &InvalidPayloadError{Got: typeName(raw)}
	}

	meta := defaultMeta(time.Now().UTC())
	if callerMeta, ok := asObject(payload["meta"]); ok {
		for k, v := range callerMeta {
			meta[k] = v
		}
	}

	regions := listOrEmpty(payload["regions"])
	rawTreks := listOrEmpty(payload["treks"])

	treks := make([]any, 0, len(rawTreks))
	reports := make([]ValidationReport, 0, len(rawTreks))
	for i, rt := range rawTreks {
		tm, ok := asObject(rt)
		if !ok {
			return nil, nil, &TrekNormalizationError{
				Index: i + 1,
				Err:   fmt.Errorf("trek record is not an object (got %s)", typeName(rt)),
			}
		}

		normalized, err := n.NormalizeTrek(tm)
		if err != nil {
			return nil, nil, &TrekNormalizationError{
				Index: i + 1,
				Slug:  stringOr(tm, "slug", ""),
				Title: stringOr(tm, "title", ""),
				Err:   err,
			}
		}

		report := ValidateTrek(normalized)
		if !report.Valid {
			n.diag.Warn("trek failed validation",
				"index", i+1,
				"slug", stringOr(normalized, "slug", ""),
				"errors", report.Errors,
			)
		}

		treks = append(treks, normalized)
		reports = append(reports, report)
	}

	meta["counts"] = Aggregate(regions, treks)
	backfillMeta(meta)

	return map[string]any{
		"meta":    meta,
		"regions": regions,
		"treks":   treks,
	}, reports, nil
}

// defaultMeta returns a fully-populated meta envelope. Every field has a
// documented default so the envelope is never partial.
func defaultMeta(now time.Time) map[string]any {
	return map[string]any{
		"schema_version":    "1.0",
		"format":            "trek-catalog",
		"mode":              "replace_nested",
		"generated_by":      "trekadmin-importer",
		"generated_at":      now.Format(time.RFC3339),
		"generator_version": Version,
		"counts":            Statistics{},
		"validation":        defaultValidationRules(),
		"options":           defaultOptions(),
		"source":            defaultSource(),
		"processing":        defaultProcessing(),
	}
}

// backfillMeta restores any validation/options/source/processing
// sub-object the caller-supplied meta replaced with a non-object value
// or removed entirely.
func backfillMeta(meta map[string]any) {
	if _, ok := asObject(meta["validation"]); !ok {
		meta["validation"] = defaultValidationRules()
	}
	if _, ok := asObject(meta["options"]); !ok {
		meta["options"] = defaultOptions()
	}
	if _, ok := asObject(meta["source"]); !ok {
		meta["source"] = defaultSource()
	}
	if _, ok := asObject(meta["processing"]); !ok {
		meta["processing"] = defaultProcessing()
	}
}

func defaultValidationRules() map[string]any {
	return map[string]any{
		"strict_mode":          false,
		"allow_partial_import": true,
		"skip_missing_images":  false,
		"validate_slugs":       true,
		"required_fields":      []any{"slug", "title"},
	}
}

func defaultOptions() map[string]any {
	return map[string]any{
		"dry_run":                false,
		"overwrite_existing":     true,
		"create_missing_regions": true,
		"publish_immediately":    false,
	}
}

func defaultSource() map[string]any {
	return map[string]any{
		"type":        "bulk_import",
		"origin":      "admin-panel",
		"environment": "",
		"user":        "",
		"notes":       "",
	}
}

func defaultProcessing() map[string]any {
	return map[string]any{
		"batch_size":      25,
		"timeout_seconds": 300,
		"retry_failed":    true,
		"max_retries":     3,
	}
}
