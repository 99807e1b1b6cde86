package inmemory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shreya-bani/AI-Intake-Assist/models"
)

// Store keeps all sessions in process memory. There is no capacity bound or
// eviction beyond PruneIdle; concurrent updates to the same session are
// last-write-wins.
type Store struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

func NewInMemorySessionStore() *Store {
	return &Store{sessions: make(map[string]*models.Session)}
}

// Create registers a new session with an empty conversation and form
func (store *Store) Create() models.Session {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now().UTC()
	sess := &models.Session{
		ID:          uuid.NewString(),
		Turns:       []models.Message{},
		CreatedAt:   now,
		LastUpdated: now,
	}
	store.sessions[sess.ID] = sess
	return copySession(sess)
}

func (store *Store) Get(id string) (models.Session, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	sess, ok := store.sessions[id]
	if !ok {
		return models.Session{}, models.ErrSessionNotFound
	}
	return copySession(sess), nil
}

// Update applies a partial update. Supplied fields replace the stored value
// wholesale, omitted fields are untouched, LastUpdated is always refreshed.
func (store *Store) Update(id string, upd models.SessionUpdate) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	sess, ok := store.sessions[id]
	if !ok {
		return models.ErrSessionNotFound
	}

	if upd.Turns != nil {
		sess.Turns = append([]models.Message(nil), (*upd.Turns)...)
	}
	if upd.Form != nil {
		sess.Form = *upd.Form
	}
	sess.LastUpdated = time.Now().UTC()
	return nil
}

func (store *Store) Delete(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.sessions[id]; !ok {
		return false
	}
	delete(store.sessions, id)
	return true
}

// PruneIdle drops sessions that have not been touched for maxIdle and
// returns how many were removed
func (store *Store) PruneIdle(maxIdle time.Duration) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	cutoff := time.Now().UTC().Add(-maxIdle)
	pruned := 0
	for id, sess := range store.sessions {
		if sess.LastUpdated.Before(cutoff) {
			delete(store.sessions, id)
			pruned++
		}
	}
	return pruned
}

func copySession(sess *models.Session) models.Session {
	out := *sess
	out.Turns = append([]models.Message(nil), sess.Turns...)
	return out
}
