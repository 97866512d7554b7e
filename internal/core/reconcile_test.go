package core

import (
	"reflect"
	"testing"
)

// ============================================================================
// Hero Section
// ============================================================================

func TestReconcileHero_Defaults(t *testing.T) {
	out := reconcileHero(map[string]any{})

	for _, field := range heroTextFields {
		if out[field] != "" {
			t.Errorf("expected empty %s, got %v", field, out[field])
		}
	}
	if out["cta_label"] != defaultCTALabel {
		t.Errorf("expected default cta_label %q, got %v", defaultCTALabel, out["cta_label"])
	}
	if out["cta_link"] != "" {
		t.Errorf("expected empty cta_link, got %v", out["cta_link"])
	}
}

func TestReconcileHero_CTAPreference(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want string
	}{
		{"cta_text wins over cta_label", map[string]any{"cta_text": "Reserve", "cta_label": "Book"}, "Reserve"},
		{"cta_label when no cta_text", map[string]any{"cta_label": "Book"}, "Book"},
		{"default when neither", map[string]any{}, defaultCTALabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := reconcileHero(tt.in)
			if out["cta_label"] != tt.want {
				t.Errorf("expected cta_label %q, got %v", tt.want, out["cta_label"])
			}
		})
	}
}

func TestReconcileHero_NonObjectInput(t *testing.T) {
	// A malformed hero value still yields the fully-defaulted shape.
	out := reconcileHero("not an object")
	if out["title"] != "" || out["cta_label"] != defaultCTALabel {
		t.Errorf("expected defaulted shape for non-object input, got %v", out)
	}
}

// ============================================================================
// Action Section
// ============================================================================

func TestReconcileAction_LegacyFieldNames(t *testing.T) {
	out := reconcileAction(map[string]any{
		"pdf_url":   "/files/trek.pdf",
		"map_image": "/img/map.png",
	})

	if out["pdf_path"] != "/files/trek.pdf" {
		t.Errorf("expected pdf_url to map to pdf_path, got %v", out["pdf_path"])
	}
	if out["map_image_path"] != "/img/map.png" {
		t.Errorf("expected map_image to map to map_image_path, got %v", out["map_image_path"])
	}
}

func TestReconcileAction_CanonicalWins(t *testing.T) {
	out := reconcileAction(map[string]any{
		"pdf_path": "/canonical.pdf",
		"pdf_url":  "/legacy.pdf",
	})
	if out["pdf_path"] != "/canonical.pdf" {
		t.Errorf("expected canonical pdf_path to win, got %v", out["pdf_path"])
	}
}

// ============================================================================
// Cost Section
// ============================================================================

func TestReconcileCost(t *testing.T) {
	out := reconcileCost(map[string]any{
		"inclusions": []any{"Permits", "Guide"},
	})

	if out["title"] != defaultCostTitle {
		t.Errorf("expected default title %q, got %v", defaultCostTitle, out["title"])
	}
	if got := out["cost_inclusions"].([]any); len(got) != 2 {
		t.Errorf("expected 2 inclusions from legacy key, got %v", got)
	}
	if got := out["cost_exclusions"].([]any); len(got) != 0 {
		t.Errorf("expected empty exclusions, got %v", got)
	}
}

// ============================================================================
// Cost and Dates Section
// ============================================================================

func TestReconcileCostAndDates_FlattensDeparturesByMonth(t *testing.T) {
	section, departures, _, _ := reconcileCostAndDates(map[string]any{
		"intro_text": "Fixed departures",
		"departures_by_month": []any{
			map[string]any{"month": "March", "departures": []any{
				map[string]any{"start": "2026-03-01"},
				map[string]any{"start": "2026-03-15"},
			}},
			map[string]any{"month": "April", "departures": []any{
				map[string]any{"start": "2026-04-05"},
			}},
		},
	})

	if section["intro_text"] != "Fixed departures" {
		t.Errorf("expected intro_text to carry over, got %v", section["intro_text"])
	}
	if len(departures) != 3 {
		t.Errorf("expected 3 flattened departures, got %d", len(departures))
	}
}

func TestReconcileCostAndDates_VerbatimDepartures(t *testing.T) {
	_, departures, _, _ := reconcileCostAndDates(map[string]any{
		"departures": []any{map[string]any{"start": "2026-10-01"}},
	})
	if len(departures) != 1 {
		t.Errorf("expected verbatim departures, got %d", len(departures))
	}
}

func TestReconcileCostAndDates_SiblingPreferences(t *testing.T) {
	_, _, groupPrices, dateHighlights := reconcileCostAndDates(map[string]any{
		"groupPrices":     []any{map[string]any{"size": "2-4"}},
		"group_prices":    []any{map[string]any{"size": "ignored"}, map[string]any{"size": "also ignored"}},
		"highlights":      []any{"Early bird discount"},
		"date_highlights": []any{"ignored", "ignored"},
	})

	if len(groupPrices) != 1 {
		t.Errorf("expected groupPrices to win over group_prices, got %d entries", len(groupPrices))
	}
	if len(dateHighlights) != 1 {
		t.Errorf("expected highlights to win over date_highlights, got %d entries", len(dateHighlights))
	}
}

func TestReconcileCostAndDates_EmptySource(t *testing.T) {
	section, departures, groupPrices, dateHighlights := reconcileCostAndDates(map[string]any{})

	if section["intro_text"] != "" {
		t.Errorf("expected empty intro_text, got %v", section["intro_text"])
	}
	if len(departures) != 0 || len(groupPrices) != 0 || len(dateHighlights) != 0 {
		t.Errorf("expected empty siblings, got %d/%d/%d",
			len(departures), len(groupPrices), len(dateHighlights))
	}
}

// ============================================================================
// FAQ Categories
// ============================================================================

func TestReconcileFAQCategories_Defaults(t *testing.T) {
	out := reconcileFAQCategories([]any{
		map[string]any{
			"title": "Permits",
			"faqs": []any{
				map[string]any{"question": "Do I need one?", "answer": "Yes"},
			},
		},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 category, got %d", len(out))
	}
	cat := out[0].(map[string]any)
	if cat["icon"] != "general" {
		t.Errorf("expected default icon general, got %v", cat["icon"])
	}
	if cat["order"] != 1 {
		t.Errorf("expected default order 1, got %v", cat["order"])
	}

	questions := cat["questions"].([]any)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0].(map[string]any)
	if q["order"] != 1 {
		t.Errorf("expected positional order 1, got %v", q["order"])
	}
}

func TestReconcileFAQCategories_ExplicitZeroOrderPreserved(t *testing.T) {
	// order uses null-coalescing semantics: an explicit 0 must survive,
	// not be replaced by the 1-based position.
	out := reconcileFAQCategories([]any{
		map[string]any{
			"title": "General",
			"questions": []any{
				map[string]any{"question": "First?", "answer": "Yes", "order": float64(0)},
				map[string]any{"question": "Second?", "answer": "Also"},
			},
		},
	})

	questions := out[0].(map[string]any)["questions"].([]any)
	if got := questions[0].(map[string]any)["order"]; got != 0 {
		t.Errorf("expected explicit order 0 to be preserved, got %v", got)
	}
	if got := questions[1].(map[string]any)["order"]; got != 2 {
		t.Errorf("expected positional order 2, got %v", got)
	}
}

func TestReconcileFAQCategories_FaqsWinOverQuestions(t *testing.T) {
	out := reconcileFAQCategories([]any{
		map[string]any{
			"faqs":      []any{map[string]any{"question": "From faqs"}},
			"questions": []any{map[string]any{"question": "ignored"}, map[string]any{"question": "ignored"}},
		},
	})

	questions := out[0].(map[string]any)["questions"].([]any)
	if len(questions) != 1 {
		t.Fatalf("expected faqs list to win, got %d questions", len(questions))
	}
	if questions[0].(map[string]any)["question"] != "From faqs" {
		t.Errorf("expected question from faqs list, got %v", questions[0])
	}
}

// ============================================================================
// Info Sections and Articles
// ============================================================================

func TestReconcileArticles_ShapeSniffing(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"sequence passes through", []any{"a", "b"}, []any{"a", "b"}},
		{"object with articles is lifted", map[string]any{"articles": "single"}, []any{"single"}},
		{"object with details is stringified", map[string]any{"details": float64(42)}, []any{"42"}},
		{"bare string is wrapped", "just text", []any{"just text"}},
		{"nil becomes empty", nil, []any{}},
		{"number becomes empty", float64(7), []any{}},
		{"object without known keys becomes empty", map[string]any{"other": 1}, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcileArticles(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReconcileSection_Defaults(t *testing.T) {
	out := reconcileSection(map[string]any{"heading": "Gear List", "order": float64(0)})

	if out["heading"] != "Gear List" {
		t.Errorf("expected heading to carry over, got %v", out["heading"])
	}
	if out["order"] != 0 {
		t.Errorf("expected explicit order 0 to be preserved, got %v", out["order"])
	}
	if !reflect.DeepEqual(out["articles"], []any{}) {
		t.Errorf("expected empty articles, got %v", out["articles"])
	}
	if !reflect.DeepEqual(out["bullets"], []any{}) {
		t.Errorf("expected empty bullets, got %v", out["bullets"])
	}
}

// ============================================================================
// Overview
// ============================================================================

func TestReconcileOverview(t *testing.T) {
	out := reconcileOverview(map[string]any{
		"title":      "Everest Base Camp",
		"highlights": []any{"Kala Patthar sunrise", "Sherpa villages"},
		"sections": []any{
			map[string]any{"heading": "Route", "articles": "One long article"},
		},
	})

	if out["title"] != "Everest Base Camp" {
		t.Errorf("expected title to carry over, got %v", out["title"])
	}
	if out["description"] != "" {
		t.Errorf("expected empty description, got %v", out["description"])
	}
	if got := out["highlights"].([]any); len(got) != 2 {
		t.Errorf("expected 2 highlights, got %d", len(got))
	}

	sections := out["sections"].([]any)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	articles := sections[0].(map[string]any)["articles"].([]any)
	if !reflect.DeepEqual(articles, []any{"One long article"}) {
		t.Errorf("expected wrapped article, got %v", articles)
	}
}
