// Package core provides the schema-normalization and validation pipeline
// for trek catalog imports.
//
// Trek catalogs arrive in several historically-evolved JSON shapes: legacy
// section keys (hero, actions, cost_dates, gallery, additional_info,
// similar), nested alternative representations (departures grouped by
// month, FAQ questions under either "faqs" or "questions"), and loosely
// typed coordinate fields. This package reconciles all of them into a
// single canonical shape ready for persistence, and reports what it found
// along the way.
//
// # Pipeline
//
// The entry point is [Normalizer.BuildEnvelope]:
//
//  1. The raw payload is checked for basic shape (must be an object).
//  2. Caller-supplied meta is merged field-by-field over documented
//     defaults.
//  3. Each trek is normalized ([Normalizer.NormalizeTrek]) in input order.
//     Section reconciliation rules translate legacy keys into canonical
//     ones; itinerary days get strict coordinate validation that degrades
//     invalid values to null rather than failing.
//  4. Each normalized trek is validated ([ValidateTrek]) into a
//     [ValidationReport]: hard errors (missing slug/title) versus advisory
//     warnings (missing sections, no GPS data).
//  5. Statistics are recomputed over the whole payload ([Aggregate]) and
//     written into meta.counts.
//
// The pipeline itself performs no I/O. Diagnostics flow through an
// injected [Sink]; reports are returned to the caller, which decides
// whether to block, warn, or partially import. The only hard failures are
// a non-object payload ([InvalidPayloadError]) and a trek record whose
// normalization fails ([TrekNormalizationError]), which aborts the batch.
//
// # Error Handling
//
//   - Fatal/structural: payload not an object, trek not an object.
//     Returned as errors; no partial envelope.
//   - Record-level validation: missing required fields. Collected in
//     ValidationReport.Errors, never returned as an error.
//   - Record-level advisory: missing sections, no GPS coverage. Collected
//     in ValidationReport.Warnings.
//   - Field-level coercion: invalid latitude/longitude. Downgraded to
//     null with a diagnostic; never escalated.
//
// [Service] layers optional import-run history (Postgres) on top of the
// pure pipeline for the HTTP API.
package core
