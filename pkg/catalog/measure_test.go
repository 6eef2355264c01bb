package catalog

import "testing"

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		text   string
		wantMm int
		wantOk bool
	}{
		{"3600mm", 3600, true},
		{"3600 mm", 3600, true},
		{"3.6m", 3600, true},
		{"3.6", 3600, true},
		{"3600", 3600, true},
		{"2.4m", 2400, true},
		{"10", 10000, true},   // boundary: <= 10 reads as metres
		{"10.5", 11, true},    // just over the boundary reads as millimetres
		{"1.85 m", 1850, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"unknown", 0, false},
		{"..", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			mm, ok := ParseMeasurement(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParseMeasurement(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if mm != tt.wantMm {
				t.Errorf("ParseMeasurement(%q) = %d, want %d", tt.text, mm, tt.wantMm)
			}
		})
	}
}

func TestMaterialMaxDimensions(t *testing.T) {
	m := &Material{MaxLength: "3.0m", MaxWidth: "1250mm"}

	if mm, ok := m.MaxLengthMm(); !ok || mm != 3000 {
		t.Errorf("MaxLengthMm = %d, %v; want 3000, true", mm, ok)
	}
	if mm, ok := m.MaxWidthMm(); !ok || mm != 1250 {
		t.Errorf("MaxWidthMm = %d, %v; want 1250, true", mm, ok)
	}

	empty := &Material{}
	if _, ok := empty.MaxLengthMm(); ok {
		t.Error("material without declared maximum should report ok=false")
	}
}
