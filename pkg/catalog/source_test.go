package catalog

import (
	"context"
	"testing"
)

func TestMemorySource_InitialSnapshot(t *testing.T) {
	src := NewMemorySource([]Material{
		{ID: "b", Name: "Oak veneer"},
		{ID: "a", Name: "Black linoleum"},
	})

	var got []Material
	stop, err := src.Subscribe(context.Background(), func(snapshot []Material) {
		got = snapshot
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer stop()

	if len(got) != 2 {
		t.Fatalf("initial snapshot has %d materials, want 2", len(got))
	}
	// Snapshots are ordered by name.
	if got[0].Name != "Black linoleum" || got[1].Name != "Oak veneer" {
		t.Errorf("snapshot order = %q, %q; want name order", got[0].Name, got[1].Name)
	}
}

func TestMemorySource_Publish(t *testing.T) {
	src := NewMemorySource(nil)

	var snapshots [][]Material
	stop, err := src.Subscribe(context.Background(), func(snapshot []Material) {
		snapshots = append(snapshots, snapshot)
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	src.Publish([]Material{{ID: "m1", Name: "Ash"}})
	if len(snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2 (initial + publish)", len(snapshots))
	}
	if snapshots[1][0].Name != "Ash" {
		t.Errorf("published snapshot = %+v", snapshots[1])
	}

	stop()
	src.Publish([]Material{{ID: "m2", Name: "Birch"}})
	if len(snapshots) != 2 {
		t.Error("stopped subscriber must not receive further snapshots")
	}
}

func TestFindByID(t *testing.T) {
	snapshot := []Material{{ID: "m1", Name: "Ash"}, {ID: "m2", Name: "Birch"}}

	if m := FindByID(snapshot, "m2"); m == nil || m.Name != "Birch" {
		t.Errorf("FindByID(m2) = %+v", m)
	}
	if m := FindByID(snapshot, "missing"); m != nil {
		t.Errorf("FindByID(missing) = %+v, want nil", m)
	}
}
