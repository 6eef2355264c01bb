package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/tabletop"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	cfg := tabletop.Default()
	cfg.LengthMm = 2000
	draft := NewDraft("office desk", cfg)

	if err := store.Save(draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if draft.ID == uuid.Nil {
		t.Fatal("Save() did not assign an ID")
	}

	loaded, err := store.Load(draft.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Name != "office desk" {
		t.Errorf("Name = %q", loaded.Name)
	}
	if loaded.Config.LengthMm != 2000 {
		t.Errorf("Config.LengthMm = %d, want 2000", loaded.Config.LengthMm)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Load(uuid.New())
	if errors.GetCode(err) != errors.ErrCodeDraftNotFound {
		t.Errorf("Load() code = %v, want DRAFT_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first := NewDraft("first", tabletop.Default())
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second := NewDraft("second", tabletop.Default())
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	drafts, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("List() returned %d drafts, want 2", len(drafts))
	}
	if drafts[0].Name != "second" || drafts[1].Name != "first" {
		t.Errorf("List() order = [%s, %s], want [second, first]", drafts[0].Name, drafts[1].Name)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	draft := NewDraft("temp", tabletop.Default())
	if err := store.Save(draft); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(draft.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(draft.ID); errors.GetCode(err) != errors.ErrCodeDraftNotFound {
		t.Errorf("second Delete() code = %v, want DRAFT_NOT_FOUND", errors.GetCode(err))
	}
}
