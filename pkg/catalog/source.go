package catalog

import "context"

// Source delivers live catalogue snapshots. Implementations push the full
// material list, ordered by name, to the subscriber on subscription and
// again whenever the upstream collection changes.
//
// Snapshots are read-only: subscribers must not mutate the slice or the
// materials in it.
type Source interface {
	// Subscribe registers fn to receive snapshots. fn is called once with
	// the current snapshot before Subscribe returns, then on every upstream
	// change until stop is called or ctx is cancelled.
	Subscribe(ctx context.Context, fn func([]Material)) (stop func(), err error)
}

// FindByID returns the material with the given id from a snapshot, or nil.
func FindByID(snapshot []Material, id string) *Material {
	for i := range snapshot {
		if snapshot[i].ID == id {
			return &snapshot[i]
		}
	}
	return nil
}
