package web

// handlers.go contains the import API handlers. The heavy lifting lives in
// internal/core; handlers decode the payload, enforce request limits, and
// shape the pipeline output as JSON.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
	"github.com/udayashankhii/trekadmin-sub001/internal/logging"
)

// ImportResponse wraps a completed import run for JSON encoding.
type ImportResponse struct {
	RunID    string                  `json:"run_id,omitempty"`
	Payload  map[string]any          `json:"payload"`
	Reports  []core.ValidationReport `json:"reports"`
	Stats    core.Statistics         `json:"stats"`
	Duration string                  `json:"duration"`
}

// ValidateResponse is the output of the validate-only endpoint. The
// normalized payload is discarded; only findings and counts are returned.
type ValidateResponse struct {
	Valid   bool                    `json:"valid"`
	Reports []core.ValidationReport `json:"reports"`
	Stats   core.Statistics         `json:"stats"`
}

// handleHealth reports service liveness and whether run history is enabled.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": core.Version,
		"history": s.service.HistoryEnabled(),
	})
}

// handleImport normalizes a raw catalog payload and returns the full
// import envelope together with per-trek validation reports.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.decodePayload(w, r)
	if !ok {
		return
	}

	sourceName := r.URL.Query().Get("source")
	if sourceName == "" {
		sourceName = "api"
	}

	result, err := s.service.Import(r.Context(), raw, sourceName)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context())
	logger.Info("import completed",
		"source", sourceName,
		"run_id", result.RunID,
		"regions", result.Stats.Regions,
		"treks", result.Stats.Treks,
		"duration_ms", result.Duration.Milliseconds(),
	)

	writeJSON(w, http.StatusOK, ImportResponse{
		RunID:    result.RunID,
		Payload:  result.Envelope,
		Reports:  result.Reports,
		Stats:    result.Stats,
		Duration: result.Duration.String(),
	})
}

// handleValidate runs the pipeline without recording history and without
// returning the normalized payload. Useful as a pre-flight check.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.decodePayload(w, r)
	if !ok {
		return
	}

	envelope, reports, err := s.service.Normalizer().BuildEnvelope(raw)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := ValidateResponse{Valid: true, Reports: reports}
	for _, rep := range reports {
		if !rep.Valid {
			resp.Valid = false
			break
		}
	}
	if meta, ok := envelope["meta"].(map[string]any); ok {
		if stats, ok := meta["counts"].(core.Statistics); ok {
			resp.Stats = stats
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleListRuns returns recent import runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if !s.service.HistoryEnabled() {
		writeError(w, r, http.StatusNotImplemented, "run history is not configured")
		return
	}

	limit := s.cfg.Import.HistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			limit = i
		}
	}

	runs, err := s.service.ListRuns(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns a single import run by ID.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if !s.service.HistoryEnabled() {
		writeError(w, r, http.StatusNotImplemented, "run history is not configured")
		return
	}

	run, err := s.service.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		if errors.Is(err, core.ErrRunNotFound) {
			s.respondError(w, r, err)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid run ID")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// decodePayload reads and decodes a JSON request body, enforcing the
// configured payload size and trek count limits. On failure it writes the
// error response and returns ok=false.
func (s *Server) decodePayload(w http.ResponseWriter, r *http.Request) (any, bool) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxPayloadSize)
	defer body.Close()

	var raw any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("payload exceeds %d bytes", s.cfg.Import.MaxPayloadSize))
			return nil, false
		}
		writeError(w, r, http.StatusBadRequest, "request body is not valid JSON")
		return nil, false
	}
	// Reject trailing garbage after the JSON document
	if dec.More() {
		writeError(w, r, http.StatusBadRequest, "request body contains multiple JSON documents")
		return nil, false
	}

	if payload, ok := raw.(map[string]any); ok {
		if treks, ok := payload["treks"].([]any); ok && len(treks) > s.cfg.Import.MaxTreks {
			writeError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("payload has %d treks, limit is %d", len(treks), s.cfg.Import.MaxTreks))
			return nil, false
		}
	}

	return raw, true
}
