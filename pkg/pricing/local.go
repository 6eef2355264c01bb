package pricing

import (
	"math"

	"github.com/plankworks/plank/pkg/tabletop"
)

// Base rates per square metre by material family.
const (
	rateTimber   = 380
	rateLinoleum = 320
	rateDefault  = 250
)

// Quantity discounts: 3% from 5 pieces, 6% from 10.
const (
	discountTier1Qty    = 5
	discountTier1Factor = 0.97
	discountTier2Qty    = 10
	discountTier2Factor = 0.94
)

// referenceThicknessMm is the thickness at which the rate applies as-is;
// other thicknesses scale the unit price linearly.
const referenceThicknessMm = 25

// Local computes the instant estimate for a payload. It is pure arithmetic
// and never blocks:
//
//	unit  = areaM2 * baseRate * (thickness / 25)
//	total = round(unit * discount * quantity)
func Local(p tabletop.Payload) float64 {
	areaM2 := float64(p.LengthMm) / 1000 * float64(p.WidthMm) / 1000
	thicknessFactor := float64(p.ThicknessMm) / referenceThicknessMm

	rate := float64(rateDefault)
	switch p.Material {
	case tabletop.MaterialTimber:
		rate = rateTimber
	case tabletop.MaterialLinoleum:
		rate = rateLinoleum
	}

	unit := areaM2 * rate * thicknessFactor
	switch {
	case p.Quantity >= discountTier2Qty:
		unit *= discountTier2Factor
	case p.Quantity >= discountTier1Qty:
		unit *= discountTier1Factor
	}

	return math.Round(unit * float64(p.Quantity))
}
