package core

// itinerary.go normalizes single itinerary day records.
//
// Coordinates get the strictest treatment in the pipeline: string values
// are coerced to numbers, and anything non-numeric or outside the WGS 84
// valid range is downgraded to null with a diagnostic. Geographic data is
// optional enrichment, so a bad coordinate never fails the record.

import "math"

// Coordinate validity ranges (WGS 84).
const (
	latMin, latMax = -90.0, 90.0
	lonMin, lonMax = -180.0, 180.0
)

// dayTextFields are the itinerary day fields that default to empty string.
var dayTextFields = []string{
	"title", "description", "accommodation", "altitude",
	"duration", "distance", "meals", "place_name",
}

// NormalizeItineraryDay normalizes one raw day record. It is total: any
// input shape, including a non-object, yields a fully-defaulted record.
func (n *Normalizer) NormalizeItineraryDay(v any) map[string]any {
	m, _ := asObject(v)

	out := make(map[string]any, len(dayTextFields)+3)
	out["day"] = intOr(m["day"], 1)
	for _, k := range dayTextFields {
		out[k] = stringOr(m, k, "")
	}
	out["latitude"] = n.coordinate(m["latitude"], "latitude", latMin, latMax, out["day"])
	out["longitude"] = n.coordinate(m["longitude"], "longitude", lonMin, lonMax, out["day"])
	return out
}

// coordinate coerces a raw coordinate to float64 or nil. Out-of-range and
// non-numeric values are dropped with a diagnostic, never an error.
func (n *Normalizer) coordinate(v any, field string, min, max float64, day any) any {
	if v == nil {
		return nil
	}
	f, ok := floatValue(v)
	if !ok || math.IsNaN(f) || f < min || f > max {
		n.diag.Warn("dropping invalid coordinate",
			"field", field,
			"value", v,
			"day", day,
		)
		return nil
	}
	return f
}
