// Package session persists named configuration drafts so a tabletop in
// progress survives between CLI invocations.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/plankworks/plank/pkg/tabletop"
)

// Draft is a saved configuration with bookkeeping metadata.
type Draft struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Config  tabletop.Config `json:"config"`
	Created time.Time       `json:"created"`
	Updated time.Time       `json:"updated"`
}

// Store is the draft persistence contract.
type Store interface {
	// Save writes the draft, assigning an ID when it has none.
	Save(draft *Draft) error

	// Load returns the draft with the given ID.
	Load(id uuid.UUID) (*Draft, error)

	// List returns all drafts, newest updated first.
	List() ([]*Draft, error)

	// Delete removes the draft with the given ID.
	Delete(id uuid.UUID) error
}

// NewDraft creates an unsaved draft around a configuration.
func NewDraft(name string, cfg tabletop.Config) *Draft {
	now := time.Now().UTC()
	return &Draft{
		Name:    name,
		Config:  cfg,
		Created: now,
		Updated: now,
	}
}
