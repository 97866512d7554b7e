package core

// validate.go checks normalized treks for required fields.
//
// Validation happens at two tiers:
//  1. Errors: missing slug or title. These make the record invalid, but
//     the pipeline itself never rejects it; the caller decides policy.
//  2. Warnings: missing optional sections or GPS data. Advisory only.

// requiredTrekFields are the fields whose absence is a hard error.
var requiredTrekFields = []string{"slug", "title"}

// ValidateTrek validates a normalized trek and returns its report.
// Valid is true iff no errors were found; warnings never invalidate.
func ValidateTrek(trek map[string]any) ValidationReport {
	report := ValidationReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	for _, field := range requiredTrekFields {
		if s, _ := asString(trek[field]); s == "" {
			report.Errors = append(report.Errors, "Missing required field: "+field)
		}
	}

	if _, ok := trek["hero_section"]; !ok {
		report.Warnings = append(report.Warnings, "Missing hero_section")
	}
	if _, ok := trek["overview"]; !ok {
		report.Warnings = append(report.Warnings, "Missing overview")
	}

	days, ok := asList(trek["itinerary_days"])
	if !ok || len(days) == 0 {
		report.Warnings = append(report.Warnings, "Missing itinerary days")
	} else if countGPSDays(days) == 0 {
		report.Warnings = append(report.Warnings, "No itinerary days have GPS coordinates")
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// countGPSDays counts days carrying both coordinates.
func countGPSDays(days []any) int {
	gps := 0
	for _, d := range days {
		dm, _ := asObject(d)
		if dm["latitude"] != nil && dm["longitude"] != nil {
			gps++
		}
	}
	return gps
}
