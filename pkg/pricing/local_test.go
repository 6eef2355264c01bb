package pricing

import (
	"testing"

	"github.com/plankworks/plank/pkg/tabletop"
)

func basePayload() tabletop.Payload {
	return tabletop.Payload{
		Shape:       tabletop.ShapeRect,
		LengthMm:    2000,
		WidthMm:     900,
		ThicknessMm: 25,
		Material:    tabletop.MaterialLaminate,
		Finish:      tabletop.FinishMatte,
		Quantity:    1,
	}
}

func TestLocal_ReferenceCase(t *testing.T) {
	// 2.0m x 0.9m laminate at reference thickness:
	// 1.8 m2 * 250 * 1.0 = 450.
	if got := Local(basePayload()); got != 450 {
		t.Errorf("Local = %v, want 450", got)
	}
}

func TestLocal_MaterialRates(t *testing.T) {
	tests := []struct {
		material tabletop.Material
		want     float64
	}{
		{tabletop.MaterialLaminate, 450},  // 1.8 * 250
		{tabletop.MaterialLinoleum, 576},  // 1.8 * 320
		{tabletop.MaterialTimber, 684},    // 1.8 * 380
	}

	for _, tt := range tests {
		t.Run(string(tt.material), func(t *testing.T) {
			p := basePayload()
			p.Material = tt.material
			if got := Local(p); got != tt.want {
				t.Errorf("Local = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocal_ThicknessFactor(t *testing.T) {
	p := basePayload()
	p.ThicknessMm = 50 // factor 2.0
	if got := Local(p); got != 900 {
		t.Errorf("Local = %v, want 900", got)
	}

	p.ThicknessMm = 12 // factor 0.48: 1.8 * 250 * 0.48 = 216
	if got := Local(p); got != 216 {
		t.Errorf("Local = %v, want 216", got)
	}
}

func TestLocal_QuantityDiscount(t *testing.T) {
	tests := []struct {
		quantity int
		want     float64
	}{
		{1, 450},
		{4, 1800},   // no discount below 5
		{5, 2183},   // 450 * 0.97 * 5 = 2182.5, rounds to 2183 (round half up)
		{9, 3929},   // 450 * 0.97 * 9 = 3928.5 -> 3929
		{10, 4230},  // 450 * 0.94 * 10
		{50, 21150}, // 450 * 0.94 * 50
	}

	for _, tt := range tests {
		p := basePayload()
		p.Quantity = tt.quantity
		if got := Local(p); got != tt.want {
			t.Errorf("Local(quantity=%d) = %v, want %v", tt.quantity, got, tt.want)
		}
	}
}

func TestLocal_ZeroArea(t *testing.T) {
	p := basePayload()
	p.LengthMm = 0
	if got := Local(p); got != 0 {
		t.Errorf("Local with zero length = %v, want 0", got)
	}
}
