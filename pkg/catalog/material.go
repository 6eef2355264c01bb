// Package catalog models the externally managed sheet-material catalogue
// the configurator consumes. Records arrive as read-only snapshots from a
// [Source]; the engine never writes back.
//
// Catalogue data is entered by hand upstream, so measurements and thickness
// lists are free text ("3600mm", "3.6m", "25 mm"). This package owns the
// normalization of that text into integer millimetres and the derivation of
// the legal thickness set for a material.
package catalog

// Material is one stocked sheet in the supplier catalogue.
//
// MaxLength, MaxWidth and AvailableThicknesses are free text as entered
// upstream; use [Material.MaxLengthMm], [Material.MaxWidthMm] and
// [Thicknesses] for normalized values.
type Material struct {
	ID           string   `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	MaterialType string   `bson:"materialType" json:"materialType"`
	Finish       string   `bson:"finish" json:"finish"`
	SupplierSKU  string   `bson:"supplierSku" json:"supplierSku"`
	HexCode      string   `bson:"hexCode,omitempty" json:"hexCode,omitempty"`
	MaxLength    string   `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
	MaxWidth     string   `bson:"maxWidth,omitempty" json:"maxWidth,omitempty"`

	AvailableThicknesses []string `bson:"availableThicknesses,omitempty" json:"availableThicknesses,omitempty"`
}

// MaxLengthMm returns the material's declared maximum length in millimetres.
// ok is false when the catalogue declares no parseable maximum.
func (m *Material) MaxLengthMm() (mm int, ok bool) {
	return ParseMeasurement(m.MaxLength)
}

// MaxWidthMm returns the material's declared maximum width in millimetres.
// ok is false when the catalogue declares no parseable maximum.
func (m *Material) MaxWidthMm() (mm int, ok bool) {
	return ParseMeasurement(m.MaxWidth)
}
