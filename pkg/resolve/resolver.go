package resolve

import (
	"math"
	"slices"

	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/tabletop"
)

// State couples the configuration with the catalogue context it was
// resolved under. The selected material tightens dimension limits and
// defines the active thickness set for every subsequent event.
type State struct {
	Config   tabletop.Config
	Material *catalog.Material
}

// NewState returns a consistent starting state with no material selected.
func NewState() State {
	return Apply(State{Config: tabletop.Default()}, Normalize{})
}

// Limits is the effective dimension ceiling for a shape/material pair.
type Limits struct {
	MaxLengthMm int
	MaxWidthMm  int
}

// EffectiveLimits intersects the shape's base limit with the selected
// material's declared maximum. For a round top both axes share one diameter
// limit, so a material maximum on either axis tightens the diameter.
func EffectiveLimits(shape tabletop.Shape, m *catalog.Material) Limits {
	lim := Limits{MaxLengthMm: tabletop.MaxLengthMm, MaxWidthMm: tabletop.MaxWidthMm}
	if shape == tabletop.ShapeRound {
		lim = Limits{MaxLengthMm: tabletop.MaxRoundDiameterMm, MaxWidthMm: tabletop.MaxRoundDiameterMm}
	}

	if m != nil {
		if mm, ok := m.MaxLengthMm(); ok && mm < lim.MaxLengthMm {
			lim.MaxLengthMm = mm
		}
		if mm, ok := m.MaxWidthMm(); ok && mm < lim.MaxWidthMm {
			lim.MaxWidthMm = mm
		}
		if shape == tabletop.ShapeRound {
			d := min(lim.MaxLengthMm, lim.MaxWidthMm)
			lim.MaxLengthMm, lim.MaxWidthMm = d, d
		}
	}
	return lim
}

// ActiveThicknesses returns the ordered thickness set for the state's
// selected material, falling back to the built-in default set.
func (s State) ActiveThicknesses() []int {
	return catalog.Thicknesses(s.Material)
}

// Apply resolves one event against the state and returns a new state in
// which every invariant holds. The input state is not modified.
func Apply(s State, ev Event) State {
	c := s.Config

	switch ev := ev.(type) {
	case SetShape:
		if ev.Shape == tabletop.ShapeRound && c.Shape != tabletop.ShapeRound {
			// Reuse the smaller prior dimension as the diameter.
			d := min(c.LengthMm, c.WidthMm)
			d = clampInt(d, tabletop.MinLengthMm, tabletop.MaxRoundDiameterMm)
			c.LengthMm, c.WidthMm = d, d
		}
		c.Shape = ev.Shape

	case SetLength:
		c.LengthMm = ev.Mm
		if c.Shape == tabletop.ShapeRound {
			c.WidthMm = ev.Mm
		}

	case SetWidth:
		c.WidthMm = ev.Mm
		if c.Shape == tabletop.ShapeRound {
			c.LengthMm = ev.Mm
		}

	case SetThickness:
		c.ThicknessMm = ev.Mm

	case SetEdgeRadius:
		c.EdgeRadiusMm = ev.Mm

	case SetExponent:
		c.SuperEllipseExponent = ev.Value

	case SetQuantity:
		c.Quantity = ev.N

	case SetEdgeProfile:
		c.EdgeProfile = ev.Profile

	case SelectMaterial:
		s.Material = ev.Material
		if ev.Material != nil {
			// Map the free-text catalogue fields onto the coarse enums. The
			// mapped values equal the current ones for a re-selection, so
			// the assignment is naturally idempotent and the payload (and
			// therefore the estimator) sees no change.
			if mapped := MapMaterialType(ev.Material.MaterialType); mapped != c.Material {
				c.Material = mapped
			}
			if mapped, ok := MapFinish(ev.Material.Finish); ok && mapped != c.Finish {
				c.Finish = mapped
			}
		}

	case CommitOutline:
		c.Shape = tabletop.ShapeCustom
		c.LengthMm = int(math.Round(ev.Bounds.Width()))
		c.WidthMm = int(math.Round(ev.Bounds.Height()))

	case Normalize:
		// Invariant re-application only.
	}

	s.Config = c
	return normalize(s)
}

// normalize enforces every invariant on the state's configuration. It is
// idempotent: a consistent configuration passes through unchanged.
func normalize(s State) State {
	c := s.Config

	c.Quantity = clampInt(c.Quantity, tabletop.MinQuantity, tabletop.MaxQuantity)
	c.SuperEllipseExponent = clampFloat(c.SuperEllipseExponent,
		tabletop.MinSuperEllipseExponent, tabletop.MaxSuperEllipseExponent)

	set := catalog.Thicknesses(s.Material)
	if !slices.Contains(set, c.ThicknessMm) {
		c.ThicknessMm = catalog.SnapThickness(set, c.ThicknessMm)
	}

	lim := EffectiveLimits(c.Shape, s.Material)
	switch c.Shape {
	case tabletop.ShapeCustom:
		// Dimensions mirror the parsed outline and stay unclamped.
	case tabletop.ShapeRound:
		d := min(c.LengthMm, c.WidthMm)
		d = clampInt(d, tabletop.MinLengthMm, lim.MaxLengthMm)
		c.LengthMm, c.WidthMm = d, d
	default:
		c.LengthMm = clampInt(c.LengthMm, tabletop.MinLengthMm, lim.MaxLengthMm)
		c.WidthMm = clampInt(c.WidthMm, tabletop.MinWidthMm, lim.MaxWidthMm)
	}

	if c.Shape == tabletop.ShapeRoundedRect {
		maxRadius := c.WidthMm / 2
		if c.EdgeRadiusMm > maxRadius {
			c.EdgeRadiusMm = max(tabletop.MinEdgeRadiusMm, maxRadius)
		}
		if c.EdgeRadiusMm < tabletop.MinEdgeRadiusMm {
			c.EdgeRadiusMm = tabletop.MinEdgeRadiusMm
		}
	}

	s.Config = c
	return s
}

// DimensionsChanged reports whether the footprint differs between two
// configurations. Collaborators (3-D preview, persistence) only care about
// these fields.
func DimensionsChanged(before, after tabletop.Config) bool {
	return before.LengthMm != after.LengthMm ||
		before.WidthMm != after.WidthMm ||
		before.ThicknessMm != after.ThicknessMm ||
		before.Shape != after.Shape
}

// clampInt bounds v to [lo, hi]; when the interval is empty the floor wins.
func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
