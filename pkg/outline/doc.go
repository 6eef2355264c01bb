// Package outline extracts 2-D outline geometry from engineering drawing
// files so a custom tabletop shape can drive the configurator's dimensions.
//
// Only a small subset of the DXF format is understood: LWPOLYLINE and LINE
// entities encoded as (group-code, value) line pairs. Everything else -
// arcs, splines, blocks, 3-D solids - is skipped. The parser never fails;
// a drawing with no usable geometry simply yields an outline with no paths.
//
// Typical flow:
//
//	o := outline.Parse(string(data))
//	if len(o.Paths) == 0 {
//	    // no usable outline found
//	}
//	b := o.Bounds // axis-aligned bounding box, nil when no finite geometry
package outline
