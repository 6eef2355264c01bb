package outline

import (
	"fmt"
	"math"
	"strings"
)

// SVG renders the outline as a standalone SVG document for preview.
// Paths are drawn as stroked polylines in drawing order with the Y axis
// flipped (drawings are Y-up, SVG is Y-down). Returns an empty string when
// the outline has no bounds.
func (o Outline) SVG() string {
	if o.Bounds == nil {
		return ""
	}
	b := *o.Bounds

	const margin = 10.0
	w := b.Width() + 2*margin
	h := b.Height() + 2*margin

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f">`+"\n", w, h)
	fmt.Fprintf(&sb, `  <g fill="none" stroke="#1a1a1a" stroke-width="1">`+"\n")

	for _, path := range o.Paths {
		points := make([]string, 0, len(path))
		for _, pt := range path {
			if !isFinite(pt.X) || !isFinite(pt.Y) {
				continue
			}
			x := pt.X - b.MinX + margin
			y := b.MaxY - pt.Y + margin
			points = append(points, fmt.Sprintf("%s,%s", trimFloat(x), trimFloat(y)))
		}
		if len(points) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `    <polyline points="%s"/>`+"\n", strings.Join(points, " "))
	}

	sb.WriteString("  </g>\n</svg>\n")
	return sb.String()
}

// trimFloat formats a coordinate with two decimals, dropping trailing zeros.
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
}
