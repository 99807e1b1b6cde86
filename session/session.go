package session

import (
	"fmt"
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
	"github.com/shreya-bani/AI-Intake-Assist/session/inmemory"
)

// Store interface for session lifecycle management. Get returns a copy of
// the session so no caller holds a reference that outlives its request.
type Store interface {
	Create() models.Session
	Get(id string) (models.Session, error)
	Update(id string, upd models.SessionUpdate) error
	Delete(id string) bool
	PruneIdle(maxIdle time.Duration) int
}

type StoreType string

const (
	InMemoryStore StoreType = "inmemory"
)

func NewStore(storeType StoreType) Store {
	var store Store
	switch storeType {
	case InMemoryStore:
		store = inmemory.NewInMemorySessionStore()
	default:
		panic(fmt.Sprintf("unsupported store type: %s", storeType))
	}

	return store
}
