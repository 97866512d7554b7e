package core

import (
	"slices"
	"testing"
)

func TestValidateTrek_MissingTitle(t *testing.T) {
	report := ValidateTrek(map[string]any{"slug": "ebc"})

	if report.Valid {
		t.Error("expected trek without title to be invalid")
	}
	if !slices.Contains(report.Errors, "Missing required field: title") {
		t.Errorf("expected missing title error, got %v", report.Errors)
	}
	if slices.Contains(report.Errors, "Missing required field: slug") {
		t.Errorf("did not expect missing slug error, got %v", report.Errors)
	}
}

func TestValidateTrek_MissingOverviewIsWarning(t *testing.T) {
	report := ValidateTrek(map[string]any{
		"slug":         "ebc",
		"title":        "Everest Base Camp",
		"hero_section": map[string]any{},
		"itinerary_days": []any{
			map[string]any{"day": 1, "latitude": float64(27.9), "longitude": float64(86.8)},
		},
	})

	if !report.Valid {
		t.Errorf("expected trek to remain valid, errors: %v", report.Errors)
	}
	if !slices.Contains(report.Warnings, "Missing overview") {
		t.Errorf("expected missing overview warning, got %v", report.Warnings)
	}
}

func TestValidateTrek_EmptySlugString(t *testing.T) {
	report := ValidateTrek(map[string]any{"slug": "", "title": "T"})
	if report.Valid {
		t.Error("expected empty slug to be a hard error")
	}
}

func TestValidateTrek_ItineraryWarnings(t *testing.T) {
	tests := []struct {
		name string
		trek map[string]any
		want string
	}{
		{
			"missing itinerary",
			map[string]any{"slug": "a", "title": "A"},
			"Missing itinerary days",
		},
		{
			"empty itinerary",
			map[string]any{"slug": "a", "title": "A", "itinerary_days": []any{}},
			"Missing itinerary days",
		},
		{
			"itinerary without GPS",
			map[string]any{"slug": "a", "title": "A", "itinerary_days": []any{
				map[string]any{"day": 1, "latitude": nil, "longitude": nil},
				map[string]any{"day": 2, "latitude": float64(27.9), "longitude": nil},
			}},
			"No itinerary days have GPS coordinates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateTrek(tt.trek)
			if !report.Valid {
				t.Errorf("expected advisory-only findings, errors: %v", report.Errors)
			}
			if !slices.Contains(report.Warnings, tt.want) {
				t.Errorf("expected warning %q, got %v", tt.want, report.Warnings)
			}
		})
	}
}

func TestValidateTrek_FullyPopulated(t *testing.T) {
	report := ValidateTrek(map[string]any{
		"slug":         "ebc",
		"title":        "Everest Base Camp",
		"hero_section": map[string]any{},
		"overview":     map[string]any{},
		"itinerary_days": []any{
			map[string]any{"day": 1, "latitude": float64(27.9), "longitude": float64(86.8)},
		},
	})

	if !report.Valid {
		t.Errorf("expected valid report, errors: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", report.Warnings)
	}
}
