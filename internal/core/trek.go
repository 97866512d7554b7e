package core

// trek.go orchestrates the per-section reconciliation rules over one trek
// record.
//
// The normalizer builds a fresh canonical map rather than mutating the
// input: pass-through fields are copied, legacy section keys are skipped
// during the copy and translated explicitly, so a normalized trek can
// never carry both a legacy key and its canonical counterpart.

import "fmt"

// legacySectionKeys maps each legacy section key to the canonical key
// that replaces it. Legacy keys are never copied into the output.
var legacySectionKeys = map[string]string{
	"hero":            "hero_section",
	"actions":         "action",
	"cost_dates":      "cost_and_date_section",
	"gallery":         "gallery_images",
	"additional_info": "additional_info_sections",
	"similar":         "similar_treks",
}

// NormalizeTrek produces the canonical form of one raw trek record.
// Sections absent from the input (under both their canonical and legacy
// keys) stay absent, so the validator's "missing section" warnings remain
// meaningful. Applying NormalizeTrek to an already-normalized trek yields
// the same result.
func (n *Normalizer) NormalizeTrek(raw map[string]any) (map[string]any, error) {
	if raw == nil {
		return nil, fmt.Errorf("trek record is nil")
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if _, legacy := legacySectionKeys[k]; legacy {
			continue
		}
		out[k] = v
	}

	if v, ok := sectionValue(raw, "hero_section", "hero"); ok {
		out["hero_section"] = reconcileHero(v)
	}

	if v, ok := sectionValue(raw, "action", "actions"); ok {
		out["action"] = reconcileAction(v)
	}

	if v, ok := raw["cost"]; ok {
		out["cost"] = reconcileCost(v)
	}

	if v, ok := sectionValue(raw, "cost_and_date_section", "cost_dates"); ok {
		section, departures, groupPrices, dateHighlights := reconcileCostAndDates(v)
		out["cost_and_date_section"] = section
		// Existing canonical top-level lists win over values derived from
		// the legacy object; this keeps re-normalization stable.
		if _, ok := raw["departures"]; !ok {
			out["departures"] = departures
		}
		if _, ok := raw["group_prices"]; !ok {
			out["group_prices"] = groupPrices
		}
		if _, ok := raw["date_highlights"]; !ok {
			out["date_highlights"] = dateHighlights
		}
	}

	if v, ok := raw["faq_categories"]; ok {
		out["faq_categories"] = reconcileFAQCategories(v)
	}

	// Gallery images and similar treks have no per-entry rules; the legacy
	// key is simply renamed.
	if v, ok := sectionValue(raw, "gallery_images", "gallery"); ok {
		out["gallery_images"] = listOrEmpty(v)
	}

	if v, ok := sectionValue(raw, "additional_info_sections", "additional_info"); ok {
		out["additional_info_sections"] = reconcileInfoSections(v)
	}

	if v, ok := sectionValue(raw, "similar_treks", "similar"); ok {
		out["similar_treks"] = listOrEmpty(v)
	}

	if v, ok := raw["overview"]; ok {
		out["overview"] = reconcileOverview(v)
	}

	if days, ok := asList(raw["itinerary_days"]); ok {
		normalized := make([]any, 0, len(days))
		gpsDays := 0
		for _, d := range days {
			nd := n.NormalizeItineraryDay(d)
			if nd["latitude"] != nil && nd["longitude"] != nil {
				gpsDays++
			}
			normalized = append(normalized, nd)
		}
		out["itinerary_days"] = normalized

		slug := stringOr(raw, "slug", "")
		n.diag.Info("itinerary normalized",
			"slug", slug,
			"days", len(normalized),
			"days_with_gps", gpsDays,
		)
		if gpsDays == 0 {
			n.diag.Warn("no itinerary days carry GPS coordinates", "slug", slug)
		}
	}

	return out, nil
}

// sectionValue returns the value for a section, preferring the canonical
// key and falling back to the legacy key. The bool is false when neither
// key is present.
func sectionValue(raw map[string]any, canonical, legacy string) (any, bool) {
	if v, ok := raw[canonical]; ok {
		return v, true
	}
	if v, ok := raw[legacy]; ok {
		return v, true
	}
	return nil, false
}
