package resolve

import (
	"strings"

	"github.com/plankworks/plank/pkg/tabletop"
)

// MapMaterialType maps a catalogue material's free-text type onto the
// coarse pricing enumeration by substring containment. Anything that is
// neither linoleum nor a wood product prices as laminate.
func MapMaterialType(text string) tabletop.Material {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "linoleum"):
		return tabletop.MaterialLinoleum
	case strings.Contains(t, "veneer"), strings.Contains(t, "timber"):
		return tabletop.MaterialTimber
	default:
		return tabletop.MaterialLaminate
	}
}

// MapFinish maps a catalogue material's free-text finish onto the finish
// enumeration. ok is false when the text matches no rule, in which case the
// configuration's current finish is kept.
func MapFinish(text string) (finish tabletop.Finish, ok bool) {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "matte"):
		return tabletop.FinishMatte, true
	case strings.Contains(t, "satin"), strings.Contains(t, "semi"), strings.Contains(t, "gloss"):
		return tabletop.FinishSatin, true
	default:
		return "", false
	}
}
