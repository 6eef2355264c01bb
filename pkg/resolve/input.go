package resolve

import (
	"strconv"
	"strings"
)

// TextField models a manually typed numeric input. While the user is
// editing, the raw text lives here independently of the committed value so
// clearing and retyping never snaps the field back mid-edit. Only a
// successful parse commits anything; on blur with unusable text the field
// reverts to the last committed value.
//
// TextField is a value type; every method returns a new field.
type TextField struct {
	committed int
	text      string
	editing   bool
}

// NewTextField returns a field committed to v.
func NewTextField(v int) TextField {
	return TextField{committed: v}
}

// Value returns the last committed value.
func (f TextField) Value() int { return f.committed }

// Editing reports whether the field holds provisional text.
func (f TextField) Editing() bool { return f.editing }

// Text returns what the input should display: the provisional text while
// editing, otherwise the committed value.
func (f TextField) Text() string {
	if f.editing {
		return f.text
	}
	return strconv.Itoa(f.committed)
}

// WithInput stores newly typed text as provisional.
func (f TextField) WithInput(text string) TextField {
	f.text = text
	f.editing = true
	return f
}

// Parse attempts to read the provisional text as an integer. ok is false
// while the text is empty or unparsable; that is not an error, the text
// simply stays provisional.
func (f TextField) Parse() (v int, ok bool) {
	if !f.editing {
		return f.committed, true
	}
	v, err := strconv.Atoi(strings.TrimSpace(f.text))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Commit records the resolved value (post clamp/snap) while preserving the
// edit in progress, so the user keeps typing against their own text.
func (f TextField) Commit(resolved int) TextField {
	f.committed = resolved
	return f
}

// Blur ends the edit. The caller passes the resolved value to settle on:
// the re-clamped parse result when the text was usable, or the re-clamped
// previous committed value when it was not.
func (f TextField) Blur(resolved int) TextField {
	f.committed = resolved
	f.text = ""
	f.editing = false
	return f
}
