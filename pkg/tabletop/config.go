// Package tabletop defines the configuration model for a parametrically
// configured table surface: its shape, dimensions, material, edge treatment
// and order quantity.
//
// A [Config] is a plain value. The constraint engine in pkg/resolve takes a
// Config and returns a new one; nothing in this package mutates state. The
// limits declared here are the shape base limits only - catalogue materials
// can tighten them further (see pkg/resolve).
package tabletop

// Shape identifies the outline family of a tabletop.
type Shape string

// Supported tabletop shapes.
const (
	ShapeRect         Shape = "rect"
	ShapeRoundedRect  Shape = "rounded-rect"
	ShapeRoundTop     Shape = "round-top"
	ShapeRound        Shape = "round"
	ShapeEllipse      Shape = "ellipse"
	ShapeSuperEllipse Shape = "super-ellipse"
	ShapeCustom       Shape = "custom"
)

// Shapes lists all supported shapes in display order.
var Shapes = []Shape{
	ShapeRect,
	ShapeRoundedRect,
	ShapeRoundTop,
	ShapeRound,
	ShapeEllipse,
	ShapeSuperEllipse,
	ShapeCustom,
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	for _, known := range Shapes {
		if s == known {
			return true
		}
	}
	return false
}

// Material is the coarse material family used for pricing.
type Material string

// Material families.
const (
	MaterialTimber   Material = "timber"
	MaterialLinoleum Material = "linoleum"
	MaterialLaminate Material = "laminate"
)

// Finish is the surface finish family.
type Finish string

// Finish families.
const (
	FinishMatte Finish = "matte"
	FinishSatin Finish = "satin"
)

// EdgeProfile is the edge machining applied to the tabletop perimeter.
type EdgeProfile string

// Edge profiles.
const (
	EdgeSquare   EdgeProfile = "square"
	EdgeChamfer  EdgeProfile = "chamfer"
	EdgeRoundOver EdgeProfile = "round-over"
)

// Dimension limits in millimetres. These are the shape base limits; a
// selected catalogue material may declare tighter maxima.
const (
	MaxLengthMm        = 3600
	MaxWidthMm         = 1800
	MaxRoundDiameterMm = 1800
	MinLengthMm        = 500
	MinWidthMm         = 300

	MinEdgeRadiusMm = 50

	MinQuantity = 1
	MaxQuantity = 50
)

// Super-ellipse exponent range. 2.0 is a plain ellipse; higher values
// square off the corners.
const (
	MinSuperEllipseExponent = 1.5
	MaxSuperEllipseExponent = 6.0
)

// Config is the full parametric description of a tabletop order line.
//
// Config is passed and returned by value throughout the engine. Two configs
// are comparable with ==.
type Config struct {
	Shape Shape `json:"shape"`

	LengthMm    int `json:"lengthMm"`
	WidthMm     int `json:"widthMm"`
	ThicknessMm int `json:"thicknessMm"`

	// EdgeRadiusMm is only meaningful for ShapeRoundedRect.
	EdgeRadiusMm int `json:"edgeRadiusMm"`

	// SuperEllipseExponent is only meaningful for ShapeSuperEllipse.
	SuperEllipseExponent float64 `json:"superEllipseExponent"`

	Material    Material    `json:"material"`
	Finish      Finish      `json:"finish"`
	EdgeProfile EdgeProfile `json:"edgeProfile"`

	Quantity int `json:"quantity"`

	// Shape-specific pass-through measurements. The engine does not interpret
	// these; they ride along into the pricing payload for shapes handled by
	// the remote collaborator.
	ReturnLegMm    int `json:"returnLegMm,omitempty"`
	CableContourMm int `json:"cableContourMm,omitempty"`
}

// Default returns a sensible starting configuration for a new draft.
func Default() Config {
	return Config{
		Shape:                ShapeRect,
		LengthMm:             1600,
		WidthMm:              800,
		ThicknessMm:          25,
		EdgeRadiusMm:         MinEdgeRadiusMm,
		SuperEllipseExponent: 2.5,
		Material:             MaterialLaminate,
		Finish:               FinishMatte,
		EdgeProfile:          EdgeSquare,
		Quantity:             1,
	}
}
