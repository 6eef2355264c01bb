package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ParseMeasurement normalizes a free-text catalogue measurement into integer
// millimetres. ok is false for empty input or input with nothing numeric in
// it.
//
// All characters except digits and "." are stripped before parsing, so
// "3600mm", "3600 mm" and "3600" are equivalent. A magnitude greater than 10
// is taken to already be millimetres; 10 or below is taken to be metres and
// scaled by 1000. The heuristic holds because no real tabletop blank is 10 mm
// or shorter, and no catalogue maximum of 10 m or more is written unitless
// in millimetres.
//
//	ParseMeasurement("3600mm") // 3600, true
//	ParseMeasurement("3.6m")   // 3600, true
//	ParseMeasurement("3.6")    // 3600, true
//	ParseMeasurement("")       // 0, false
func ParseMeasurement(text string) (mm int, ok bool) {
	v, ok := parseNumeric(text)
	if !ok {
		return 0, false
	}
	if v > 10 {
		return int(math.Round(v)), true
	}
	return int(math.Round(v * 1000)), true
}

// parseNumeric strips text down to digits and "." and parses the remainder.
func parseNumeric(text string) (float64, bool) {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
