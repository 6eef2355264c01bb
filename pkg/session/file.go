package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plankworks/plank/pkg/errors"
)

// FileStore keeps drafts as one JSON file per draft under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to create draft directory")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

// Save implements Store.
func (s *FileStore) Save(draft *Draft) error {
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	draft.Updated = time.Now().UTC()

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode draft")
	}

	tmp := s.path(draft.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write draft")
	}
	if err := os.Rename(tmp, s.path(draft.ID)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write draft")
	}
	return nil
}

// Load implements Store.
func (s *FileStore) Load(id uuid.UUID) (*Draft, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeDraftNotFound, "draft not found: %s", id.String())
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read draft")
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "corrupt draft file")
	}
	return &draft, nil
}

// List implements Store.
func (s *FileStore) List() ([]*Draft, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to list drafts")
	}

	var drafts []*Draft
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		draft, err := s.Load(id)
		if err != nil {
			continue
		}
		drafts = append(drafts, draft)
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].Updated.After(drafts[j].Updated)
	})
	return drafts, nil
}

// Delete implements Store.
func (s *FileStore) Delete(id uuid.UUID) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeDraftNotFound, "draft not found: %s", id.String())
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete draft")
	}
	return nil
}
