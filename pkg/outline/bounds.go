package outline

import "math"

// Bounds is the axis-aligned bounding box of a path set. When present it
// always satisfies MinX <= MaxX and MinY <= MaxY.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ComputeBounds reduces paths to their bounding box, tracking running
// min/max per axis. Non-finite coordinates (the NaN pass-through from
// [Parse], or infinities) are skipped entirely; if no finite point is seen
// the result is nil.
func ComputeBounds(paths []Path) *Bounds {
	b := Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	found := false

	for _, path := range paths {
		for _, pt := range path {
			if !isFinite(pt.X) || !isFinite(pt.Y) {
				continue
			}
			found = true
			b.MinX = math.Min(b.MinX, pt.X)
			b.MinY = math.Min(b.MinY, pt.Y)
			b.MaxX = math.Max(b.MaxX, pt.X)
			b.MaxY = math.Max(b.MaxY, pt.Y)
		}
	}

	if !found {
		return nil
	}
	return &b
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
