// Package mapping reconciles the backend's English wire records with the
// application's Italian-labeled domain entities.
//
// Every function here is pure: inputs are never mutated and each call
// allocates fresh output, so the package is safe to call from concurrent
// request handlers without synchronization.
package mapping

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseNumber normalizes a decoded JSON value that may be a number, a
// numeric string, or absent. nil means absent; unparseable strings and
// NaN/Inf are treated as absent rather than as errors.
func ParseNumber(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case json.Number:
		return parseFloatString(n.String())
	case string:
		return parseFloatString(n)
	default:
		return nil
	}
}

// ParseInteger is the integer sibling of ParseNumber. Fractional values
// are truncated toward zero.
func ParseInteger(v any) *int {
	if s, ok := v.(string); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &i
		}
	}

	f := ParseNumber(v)
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	i := int(math.Trunc(*f))
	return &i
}

func parseFloatString(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
