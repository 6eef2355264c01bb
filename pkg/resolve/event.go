package resolve

import (
	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/outline"
	"github.com/plankworks/plank/pkg/tabletop"
)

// Event is a single proposed change to the configuration. The concrete
// types below form a closed set; Apply panics on no others because the
// switch is exhaustive over this package's types.
type Event interface {
	isEvent()
}

// SetShape switches the tabletop outline family.
type SetShape struct {
	Shape tabletop.Shape
}

// SetLength proposes a new length in millimetres.
type SetLength struct {
	Mm int
}

// SetWidth proposes a new width in millimetres.
type SetWidth struct {
	Mm int
}

// SetThickness proposes a new thickness; the committed value is snapped to
// the active thickness set.
type SetThickness struct {
	Mm int
}

// SetEdgeRadius proposes a new rounded-rect corner radius.
type SetEdgeRadius struct {
	Mm int
}

// SetExponent proposes a new super-ellipse exponent.
type SetExponent struct {
	Value float64
}

// SetQuantity proposes a new order quantity.
type SetQuantity struct {
	N int
}

// SetEdgeProfile selects an edge machining profile.
type SetEdgeProfile struct {
	Profile tabletop.EdgeProfile
}

// SelectMaterial picks a catalogue material (nil clears the selection).
// Selection re-derives dimension limits and the thickness set, and maps the
// material's free-text type and finish onto the coarse enumerations.
type SelectMaterial struct {
	Material *catalog.Material
}

// CommitOutline locks the configuration to a parsed custom outline: the
// shape becomes custom and the dimensions are taken from the bounding box.
type CommitOutline struct {
	Bounds outline.Bounds
}

// Normalize re-applies all invariants without changing any field first.
// Applying it to a consistent state is a no-op.
type Normalize struct{}

func (SetShape) isEvent()       {}
func (SetLength) isEvent()      {}
func (SetWidth) isEvent()       {}
func (SetThickness) isEvent()   {}
func (SetEdgeRadius) isEvent()  {}
func (SetExponent) isEvent()    {}
func (SetQuantity) isEvent()    {}
func (SetEdgeProfile) isEvent() {}
func (SelectMaterial) isEvent() {}
func (CommitOutline) isEvent()  {}
func (Normalize) isEvent()      {}
