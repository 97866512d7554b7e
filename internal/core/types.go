package core

// Version identifies the generator build and is stamped into
// meta.generator_version of every envelope.
const Version = "1.2.0"

// ValidationReport is the per-trek side output of the pipeline.
// Valid is true iff Errors is empty; Warnings never invalidate a record.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Statistics holds the aggregate counts embedded in meta.counts.
// All values are recomputed from scratch on every normalization run.
type Statistics struct {
	Regions            int `json:"regions"`
	Treks              int `json:"treks"`
	TotalItineraryDays int `json:"total_itinerary_days"`
	TotalHighlights    int `json:"total_highlights"`
	TotalFAQs          int `json:"total_faqs"`
	TotalGalleryImages int `json:"total_gallery_images"`
	TotalDepartures    int `json:"total_departures"`
	DaysWithGPS        int `json:"days_with_gps"`
}

// Normalizer runs the normalization pipeline. It holds no cross-call
// state, so a single Normalizer is safe for concurrent use.
type Normalizer struct {
	diag Sink
}

// NewNormalizer returns a Normalizer that emits diagnostics to diag.
// A nil diag falls back to the default slog logger.
func NewNormalizer(diag Sink) *Normalizer {
	if diag == nil {
		diag = defaultSink()
	}
	return &Normalizer{diag: diag}
}
