package catalog

import (
	"math"
	"slices"
)

// DefaultThicknesses is the built-in thickness set in millimetres, used when
// no material is selected or a material declares no parseable thicknesses.
var DefaultThicknesses = []int{12, 16, 18, 25, 33}

// Thicknesses derives the active ordered thickness set for a material.
//
// Each free-text entry is parsed by digit-stripping (interpreted directly as
// millimetres; no metre heuristic applies to thicknesses), unparsable
// entries are discarded, duplicates removed, and the result sorted
// ascending. An empty result - nil material, or nothing parseable - falls
// back to a copy of [DefaultThicknesses].
func Thicknesses(m *Material) []int {
	if m == nil {
		return slices.Clone(DefaultThicknesses)
	}

	var set []int
	for _, entry := range m.AvailableThicknesses {
		v, ok := parseNumeric(entry)
		if !ok {
			continue
		}
		mm := int(math.Round(v))
		if mm <= 0 || slices.Contains(set, mm) {
			continue
		}
		set = append(set, mm)
	}

	if len(set) == 0 {
		return slices.Clone(DefaultThicknesses)
	}
	slices.Sort(set)
	return set
}

// SnapThickness returns the member of set closest to value. The set is
// scanned in ascending order and the current best is only replaced on a
// strictly smaller distance, so of two equidistant candidates the smaller
// one wins. An empty set returns value unchanged.
func SnapThickness(set []int, value int) int {
	if len(set) == 0 {
		return value
	}

	best := set[0]
	bestDist := abs(value - best)
	for _, mm := range set[1:] {
		if d := abs(value - mm); d < bestDist {
			best = mm
			bestDist = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
