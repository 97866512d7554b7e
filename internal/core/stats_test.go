package core

import "testing"

func TestAggregate_CountsNormalizedPayload(t *testing.T) {
	n := newTestNormalizer()

	trek, err := n.NormalizeTrek(map[string]any{
		"slug":  "ebc",
		"title": "Everest Base Camp",
		"itinerary_days": []any{
			map[string]any{"day": 1, "latitude": float64(27.7), "longitude": float64(86.7)},
			map[string]any{"day": 2, "latitude": float64(27.8), "longitude": float64(86.8)},
			map[string]any{"day": 3, "latitude": float64(999), "longitude": float64(86.9)},
		},
		"faq_categories": []any{
			map[string]any{"title": "General", "questions": []any{
				map[string]any{"question": "A?"},
				map[string]any{"question": "B?"},
			}},
		},
		"gallery_images": []any{"1.jpg", "2.jpg", "3.jpg", "4.jpg"},
		"departures":     []any{map[string]any{"start": "2026-03-01"}},
	})
	if err != nil {
		t.Fatalf("normalization failed: %v", err)
	}

	regions := []any{
		map[string]any{"slug": "khumbu"},
		map[string]any{"slug": "annapurna"},
	}

	stats := Aggregate(regions, []any{trek})

	want := Statistics{
		Regions:            2,
		Treks:              1,
		TotalItineraryDays: 3,
		DaysWithGPS:        2, // day 3 has latitude 999, dropped to null
		TotalFAQs:          2,
		TotalGalleryImages: 4,
		TotalDepartures:    1,
	}
	if stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}

func TestAggregate_Highlights(t *testing.T) {
	treks := []any{
		map[string]any{
			"overview": map[string]any{
				"highlights": []any{"Kala Patthar", "Sherpa villages", "Tengboche"},
			},
		},
		map[string]any{
			"overview": map[string]any{"highlights": []any{"Poon Hill"}},
		},
	}

	stats := Aggregate(nil, treks)
	if stats.TotalHighlights != 4 {
		t.Errorf("expected 4 highlights, got %d", stats.TotalHighlights)
	}
}

func TestAggregate_EmptyPayload(t *testing.T) {
	stats := Aggregate(nil, nil)
	if stats != (Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", stats)
	}
}

func TestAggregate_SkipsMalformedTreks(t *testing.T) {
	stats := Aggregate(nil, []any{"not an object", map[string]any{
		"gallery_images": []any{"1.jpg"},
	}})

	if stats.Treks != 2 {
		t.Errorf("expected treks count 2, got %d", stats.Treks)
	}
	if stats.TotalGalleryImages != 1 {
		t.Errorf("expected 1 gallery image, got %d", stats.TotalGalleryImages)
	}
}
