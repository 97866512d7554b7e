package core

// value.go provides lenient coercion helpers for decoded JSON values.
//
// These functions handle the messy reality of legacy import payloads:
//   - numbers that arrive as float64, int, json.Number, or strings
//   - sections that may be objects, sequences, bare strings, or absent
//   - "order" fields where an explicit 0 must be preserved (null-coalescing,
//     not falsy-coalescing)
//
// All helpers are total: bad input yields the zero/default value, never an
// error. Callers that need to distinguish "absent" from "present" use the
// (value, bool) variants.

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// asObject returns v as a JSON object, or (nil, false) if it is anything else.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asList returns v as a JSON sequence, or (nil, false) if it is anything else.
func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// asString returns v as a string, or ("", false) for non-strings.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// stringOr returns m[key] as a string, stringifying scalars, or def when
// the key is absent, nil, or holds a non-scalar value.
func stringOr(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return stringify(v, def)
}

// firstString returns the first present key of m as a string, or def.
// Used for prefer-first-present chains like cta_text -> cta_label.
func firstString(m map[string]any, keys []string, def string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return stringify(v, def)
		}
	}
	return def
}

// firstList returns the first key of m holding a sequence, or an empty
// sequence when none do.
func firstList(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if l, ok := asList(m[key]); ok {
			return l
		}
	}
	return []any{}
}

// listOrEmpty returns v as a sequence, or an empty one.
func listOrEmpty(v any) []any {
	if l, ok := asList(v); ok {
		return l
	}
	return []any{}
}

// intOr returns v as an int when it is explicitly numeric, otherwise def.
// An explicit 0 is preserved; only absent or non-numeric values fall back.
func intOr(v any, def int) int {
	if f, ok := floatValue(v); ok {
		return int(f)
	}
	return def
}

// floatValue coerces a JSON value to float64. Strings are parsed so that
// quoted coordinates like "27.9881" survive. Returns false for anything
// that is not a finite-representable number.
func floatValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// stringify renders a scalar as a string. Objects and sequences yield def:
// silently flattening a structure into its Go syntax would corrupt data.
func stringify(v any, def string) string {
	switch t := v.(type) {
	case string:
		return t
	case bool, float64, float32, int, int32, int64, json.Number:
		return fmt.Sprint(t)
	default:
		return def
	}
}

// typeName describes a JSON value's shape for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
