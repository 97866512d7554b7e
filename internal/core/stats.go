package core

// stats.go recomputes payload statistics from scratch on every run.
// There is deliberately no incremental update path: the aggregator walks
// the already-normalized regions and treks once and re-derives every
// count, so the numbers can never drift from the payload they describe.

// Aggregate computes statistics over normalized regions and treks.
// It is a pure function; inputs are never modified.
func Aggregate(regions, treks []any) Statistics {
	stats := Statistics{
		Regions: len(regions),
		Treks:   len(treks),
	}

	for _, t := range treks {
		tm, ok := asObject(t)
		if !ok {
			continue
		}

		if days, ok := asList(tm["itinerary_days"]); ok {
			stats.TotalItineraryDays += len(days)
			stats.DaysWithGPS += countGPSDays(days)
		}

		if overview, ok := asObject(tm["overview"]); ok {
			if highlights, ok := asList(overview["highlights"]); ok {
				stats.TotalHighlights += len(highlights)
			}
		}

		if cats, ok := asList(tm["faq_categories"]); ok {
			for _, c := range cats {
				cm, _ := asObject(c)
				if questions, ok := asList(cm["questions"]); ok {
					stats.TotalFAQs += len(questions)
				}
			}
		}

		if images, ok := asList(tm["gallery_images"]); ok {
			stats.TotalGalleryImages += len(images)
		}

		if departures, ok := asList(tm["departures"]); ok {
			stats.TotalDepartures += len(departures)
		}
	}

	return stats
}
