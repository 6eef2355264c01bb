package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/pricing"
	"github.com/plankworks/plank/pkg/resolve"
	"github.com/plankworks/plank/pkg/tabletop"
)

func newTestModel() configuratorModel {
	materials := []catalog.Material{
		{ID: "oak", Name: "Oak Veneer", MaterialType: "veneer", Finish: "matte",
			MaxLength: "2400mm", MaxWidth: "1200mm", AvailableThicknesses: []string{"19mm", "30mm"}},
	}
	est := pricing.NewEstimator(nil, pricing.Options{})
	return newConfiguratorModel(materials, est, make(chan pricing.Estimate, 8))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m configuratorModel, keys ...string) configuratorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(configuratorModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func hasField(fields []fieldID, id fieldID) bool {
	for _, f := range fields {
		if f == id {
			return true
		}
	}
	return false
}

func TestFieldsPerShape(t *testing.T) {
	m := newTestModel()

	if hasField(m.fields(), fieldEdgeRadius) {
		t.Error("rect exposes edge radius")
	}

	m.apply(resolve.SetShape{Shape: tabletop.ShapeRoundedRect})
	if !hasField(m.fields(), fieldEdgeRadius) {
		t.Error("rounded-rect hides edge radius")
	}

	m.apply(resolve.SetShape{Shape: tabletop.ShapeRound})
	if hasField(m.fields(), fieldWidth) {
		t.Error("round exposes a separate width field")
	}

	m.apply(resolve.SetShape{Shape: tabletop.ShapeSuperEllipse})
	if !hasField(m.fields(), fieldExponent) {
		t.Error("super-ellipse hides the exponent field")
	}
}

func TestShapeCycling(t *testing.T) {
	m := newTestModel()
	// Cursor starts on the shape row.
	m = press(t, m, "right")
	if m.state.Config.Shape != tabletop.ShapeRoundedRect {
		t.Errorf("Shape = %q after one step, want rounded-rect", m.state.Config.Shape)
	}
	m = press(t, m, "left")
	if m.state.Config.Shape != tabletop.ShapeRect {
		t.Errorf("Shape = %q after stepping back, want rect", m.state.Config.Shape)
	}
}

func TestTypingResolvesImmediately(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down") // length row
	if m.cursor != fieldLength {
		t.Fatalf("cursor = %v, want length", m.cursor)
	}

	m = press(t, m, "2", "0", "0", "0")
	if m.state.Config.LengthMm != 2000 {
		t.Errorf("LengthMm = %d while typing, want 2000", m.state.Config.LengthMm)
	}
	if !m.inputs[fieldLength].Editing() {
		t.Error("field stopped editing mid-entry")
	}

	m = press(t, m, "enter")
	if m.inputs[fieldLength].Editing() {
		t.Error("field still editing after commit")
	}
	if m.inputs[fieldLength].Value() != 2000 {
		t.Errorf("committed value = %d, want 2000", m.inputs[fieldLength].Value())
	}
}

func TestTypedValueClampsOnCommit(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "9", "9")
	// 99 is below the minimum length but must stand as typed text.
	if got := m.inputs[fieldLength].Text(); got != "99" {
		t.Errorf("display text = %q while typing, want 99", got)
	}

	m = press(t, m, "enter")
	if m.state.Config.LengthMm != tabletop.MinLengthMm {
		t.Errorf("LengthMm = %d after commit, want %d", m.state.Config.LengthMm, tabletop.MinLengthMm)
	}
}

func TestMaterialSelectionSnapsThickness(t *testing.T) {
	m := newTestModel()
	m.apply(resolve.SetThickness{Mm: 25})

	m.stepMaterial(+1)
	if m.state.Material == nil || m.state.Material.ID != "oak" {
		t.Fatal("material not selected")
	}
	// 25 snaps into {19, 30}; 30 is nearer.
	if m.state.Config.ThicknessMm != 30 {
		t.Errorf("ThicknessMm = %d, want 30", m.state.Config.ThicknessMm)
	}
	if m.state.Config.LengthMm > 2400 {
		t.Errorf("LengthMm = %d exceeds material maximum", m.state.Config.LengthMm)
	}

	m.stepMaterial(+1) // wraps to none
	if m.state.Material != nil {
		t.Error("material not cleared after cycling past the catalogue")
	}
}

func TestEscapeQuitsWhenNotEditing(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc outside an edit returned no command")
	}
}
