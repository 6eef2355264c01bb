package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemorySource is an in-process [Source] backed by a static material list.
// It is used by the CLI when no catalogue backend is configured, and by
// tests that need to push snapshot updates deterministically.
type MemorySource struct {
	mu        sync.Mutex
	materials []Material
	subs      map[int]func([]Material)
	nextSub   int
}

// NewMemorySource creates a source seeded with the given materials.
// Snapshots are delivered sorted by name regardless of insertion order.
func NewMemorySource(materials []Material) *MemorySource {
	s := &MemorySource{subs: make(map[int]func([]Material))}
	s.materials = sortSnapshot(materials)
	return s
}

// Subscribe implements [Source]. The initial snapshot is delivered
// synchronously before Subscribe returns.
func (s *MemorySource) Subscribe(ctx context.Context, fn func([]Material)) (func(), error) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	snapshot := slices.Clone(s.materials)
	s.mu.Unlock()

	fn(snapshot)

	stop := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			stop()
		}()
	}
	return stop, nil
}

// Publish replaces the material list and pushes the new snapshot to all
// subscribers.
func (s *MemorySource) Publish(materials []Material) {
	s.mu.Lock()
	s.materials = sortSnapshot(materials)
	snapshot := slices.Clone(s.materials)
	fns := make([]func([]Material), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func sortSnapshot(materials []Material) []Material {
	sorted := slices.Clone(materials)
	slices.SortStableFunc(sorted, func(a, b Material) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
