package core

// reconcile.go contains the per-section reconciliation rules.
//
// Each rule is a pure function (legacyShape | canonicalShape) -> canonicalShape.
// Either entry path yields an identical, fully-defaulted shape, which is
// what makes the trek normalizer idempotent: canonical shapes are fixed
// points of their own rule. Rules build new maps field-by-field and never
// mutate their input, so no stale legacy key can survive.

// defaultCTALabel is used when a hero section names no call-to-action.
const defaultCTALabel = "Book This Trek"

// defaultCostTitle is used when a cost section has no heading.
const defaultCostTitle = "Cost Includes / Excludes"

// heroTextFields are the hero section fields that default to empty string.
var heroTextFields = []string{
	"title", "subtitle", "tagline", "image_path",
	"season", "duration", "difficulty", "location",
}

// reconcileHero normalizes a hero section from either the canonical
// hero_section shape or the legacy hero shape.
func reconcileHero(v any) map[string]any {
	m, _ := asObject(v)
	out := make(map[string]any, len(heroTextFields)+2)
	for _, k := range heroTextFields {
		out[k] = stringOr(m, k, "")
	}
	out["cta_label"] = firstString(m, []string{"cta_text", "cta_label"}, defaultCTALabel)
	out["cta_link"] = stringOr(m, "cta_link", "")
	return out
}

// reconcileAction normalizes the action section. Legacy payloads used
// pdf_url and map_image for the two asset paths.
func reconcileAction(v any) map[string]any {
	m, _ := asObject(v)
	return map[string]any{
		"pdf_path":       firstString(m, []string{"pdf_path", "pdf_url"}, ""),
		"map_image_path": firstString(m, []string{"map_image_path", "map_image"}, ""),
	}
}

// reconcileCost normalizes the cost section. Legacy payloads named the
// two lists "inclusions" and "exclusions".
func reconcileCost(v any) map[string]any {
	m, _ := asObject(v)
	return map[string]any{
		"title":           stringOr(m, "title", defaultCostTitle),
		"cost_inclusions": firstList(m, "cost_inclusions", "inclusions"),
		"cost_exclusions": firstList(m, "cost_exclusions", "exclusions"),
	}
}

// reconcileCostAndDates derives the cost_and_date_section plus its three
// sibling lists from one source object (canonical section or legacy
// cost_dates). Legacy payloads nested departures under months and used
// camelCase groupPrices.
func reconcileCostAndDates(v any) (section map[string]any, departures, groupPrices, dateHighlights []any) {
	m, _ := asObject(v)
	section = map[string]any{
		"intro_text": stringOr(m, "intro_text", ""),
	}

	if months, ok := asList(m["departures_by_month"]); ok {
		departures = []any{}
		for _, month := range months {
			mm, _ := asObject(month)
			if ds, ok := asList(mm["departures"]); ok {
				departures = append(departures, ds...)
			}
		}
	} else {
		departures = firstList(m, "departures")
	}

	groupPrices = firstList(m, "groupPrices", "group_prices")
	dateHighlights = firstList(m, "highlights", "date_highlights")
	return section, departures, groupPrices, dateHighlights
}

// reconcileFAQCategories normalizes the FAQ category list. Questions may
// arrive under "faqs" (legacy) or "questions"; "faqs" wins when both are
// present. A question's order defaults to its 1-based position, but an
// explicit numeric order is kept as-is, including 0.
func reconcileFAQCategories(v any) []any {
	cats, ok := asList(v)
	if !ok {
		return []any{}
	}

	out := make([]any, 0, len(cats))
	for _, c := range cats {
		cm, _ := asObject(c)

		var rawQuestions []any
		if qs, ok := asList(cm["faqs"]); ok {
			rawQuestions = qs
		} else if qs, ok := asList(cm["questions"]); ok {
			rawQuestions = qs
		}

		questions := make([]any, 0, len(rawQuestions))
		for i, q := range rawQuestions {
			qm, _ := asObject(q)
			questions = append(questions, map[string]any{
				"question": stringOr(qm, "question", ""),
				"answer":   stringOr(qm, "answer", ""),
				"order":    intOr(qm["order"], i+1),
			})
		}

		out = append(out, map[string]any{
			"title":     stringOr(cm, "title", ""),
			"icon":      stringOr(cm, "icon", "general"),
			"order":     intOr(cm["order"], 1),
			"questions": questions,
		})
	}
	return out
}

// reconcileInfoSections normalizes additional_info_sections (or the
// legacy additional_info list) section by section.
func reconcileInfoSections(v any) []any {
	sections, ok := asList(v)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(sections))
	for _, s := range sections {
		out = append(out, reconcileSection(s))
	}
	return out
}

// reconcileSection normalizes one info/overview section.
func reconcileSection(v any) map[string]any {
	m, _ := asObject(v)
	return map[string]any{
		"heading":  stringOr(m, "heading", ""),
		"order":    intOr(m["order"], 1),
		"articles": reconcileArticles(m["articles"]),
		"bullets":  firstList(m, "bullets"),
	}
}

// reconcileArticles shape-sniffs the articles value, in order:
// sequence -> pass through; object with "articles"/"details" -> lift the
// value into a single-element sequence (details stringified); bare
// string -> wrap; anything else -> empty sequence.
func reconcileArticles(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		if a, ok := t["articles"]; ok {
			return []any{a}
		}
		if d, ok := t["details"]; ok {
			return []any{stringify(d, "")}
		}
		return []any{}
	case string:
		return []any{t}
	default:
		return []any{}
	}
}

// reconcileOverview normalizes the overview section. Its nested sections
// follow the same article rules as additional-info sections.
func reconcileOverview(v any) map[string]any {
	m, _ := asObject(v)

	sections := []any{}
	if ss, ok := asList(m["sections"]); ok {
		sections = make([]any, 0, len(ss))
		for _, s := range ss {
			sections = append(sections, reconcileSection(s))
		}
	}

	return map[string]any{
		"title":       stringOr(m, "title", ""),
		"description": stringOr(m, "description", ""),
		"highlights":  firstList(m, "highlights"),
		"sections":    sections,
	}
}
