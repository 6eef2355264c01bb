package tabletop

// Payload is the normalized pricing projection of a [Config]: every numeric
// and enumeration field that influences price, compared by value. The price
// estimator only re-triggers when the payload actually changes, so fields
// with no pricing effect (none today) must stay out of this struct.
//
// Payload is comparable with ==.
type Payload struct {
	Shape                Shape       `json:"shape"`
	LengthMm             int         `json:"lengthMm"`
	WidthMm              int         `json:"widthMm"`
	ThicknessMm          int         `json:"thicknessMm"`
	EdgeRadiusMm         int         `json:"edgeRadiusMm"`
	SuperEllipseExponent float64     `json:"superEllipseExponent"`
	Material             Material    `json:"material"`
	Finish               Finish      `json:"finish"`
	EdgeProfile          EdgeProfile `json:"edgeProfile"`
	Quantity             int         `json:"quantity"`

	// Pass-through measurements consumed only by the remote collaborator.
	ReturnLegMm    int `json:"returnLegMm,omitempty"`
	CableContourMm int `json:"cableContourMm,omitempty"`
}

// Payload returns the pricing projection of c.
func (c Config) Payload() Payload {
	return Payload{
		Shape:                c.Shape,
		LengthMm:             c.LengthMm,
		WidthMm:              c.WidthMm,
		ThicknessMm:          c.ThicknessMm,
		EdgeRadiusMm:         c.EdgeRadiusMm,
		SuperEllipseExponent: c.SuperEllipseExponent,
		Material:             c.Material,
		Finish:               c.Finish,
		EdgeProfile:          c.EdgeProfile,
		Quantity:             c.Quantity,
		ReturnLegMm:          c.ReturnLegMm,
		CableContourMm:       c.CableContourMm,
	}
}
