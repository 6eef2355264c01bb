package tabletop

import "testing"

func TestShape_Valid(t *testing.T) {
	tests := []struct {
		shape Shape
		want  bool
	}{
		{ShapeRect, true},
		{ShapeRoundedRect, true},
		{ShapeRound, true},
		{ShapeSuperEllipse, true},
		{ShapeCustom, true},
		{Shape("hexagon"), false},
		{Shape(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			if got := tt.shape.Valid(); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.shape, got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	if !c.Shape.Valid() {
		t.Errorf("default shape %q is not valid", c.Shape)
	}
	if c.LengthMm < MinLengthMm || c.LengthMm > MaxLengthMm {
		t.Errorf("default length %d outside [%d, %d]", c.LengthMm, MinLengthMm, MaxLengthMm)
	}
	if c.WidthMm < MinWidthMm || c.WidthMm > MaxWidthMm {
		t.Errorf("default width %d outside [%d, %d]", c.WidthMm, MinWidthMm, MaxWidthMm)
	}
	if c.Quantity < MinQuantity || c.Quantity > MaxQuantity {
		t.Errorf("default quantity %d outside [%d, %d]", c.Quantity, MinQuantity, MaxQuantity)
	}
}

func TestPayload_ValueComparison(t *testing.T) {
	a := Default().Payload()
	b := Default().Payload()
	if a != b {
		t.Error("payloads of identical configs should compare equal")
	}

	c := Default()
	c.WidthMm++
	if a == c.Payload() {
		t.Error("payloads of differing configs should compare unequal")
	}
}
