// Package resolve keeps a tabletop configuration self-consistent.
//
// The engine is a pure reducer: [Apply] takes the current [State] and one
// [Event] - a field edit, a shape change, a catalogue selection, or a parsed
// outline - and returns a new State in which every invariant holds:
//
//   - a round top has equal length and width, at most 1800 mm
//   - a rounded-rect corner radius stays within [50, width/2]
//   - the thickness belongs to the active catalogue thickness set
//   - dimensions respect the shape's base limit intersected with the
//     selected material's declared maximum, floored at 500x300 mm
//   - a custom shape takes its dimensions from the parsed outline and is
//     exempt from dimension clamping
//
// Apply is idempotent: resolving an already-consistent state with
// [Normalize] returns it unchanged. Nothing here blocks or performs I/O;
// catalogue data is consulted read-only through the State.
package resolve
