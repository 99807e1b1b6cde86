package inmemory

import (
	"errors"
	"testing"
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

func TestCreateInitializesEmptySession(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()

	sess := store.Create()
	if sess.ID == "" {
		t.Fatalf("expected generated session id")
	}
	if len(sess.Turns) != 0 {
		t.Fatalf("new session has turns: %+v", sess.Turns)
	}
	if sess.Form.IsComplete() {
		t.Fatalf("new session form reported complete")
	}
	if sess.CreatedAt.IsZero() || sess.LastUpdated.IsZero() {
		t.Fatalf("timestamps not stamped: %+v", sess)
	}

	other := store.Create()
	if other.ID == sess.ID {
		t.Fatalf("session ids collide: %s", sess.ID)
	}
}

func TestGetUnknownSession(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()
	if _, err := store.Get("missing"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()
	sess := store.Create()

	turns := []models.Message{{Role: models.RoleUser, Content: "hi"}}
	if err := store.Update(sess.ID, models.SessionUpdate{Turns: &turns}); err != nil {
		t.Fatalf("update turns: %v", err)
	}

	value := "John"
	form := models.IntakeForm{FirstName: models.FieldValue{Value: &value}}
	if err := store.Update(sess.ID, models.SessionUpdate{Form: &form}); err != nil {
		t.Fatalf("update form: %v", err)
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Turns) != 1 || got.Turns[0].Content != "hi" {
		t.Fatalf("turns lost by form-only update: %+v", got.Turns)
	}
	if got.Form.FirstName.Value == nil || *got.Form.FirstName.Value != "John" {
		t.Fatalf("form not updated: %+v", got.Form)
	}
	if !got.LastUpdated.After(sess.LastUpdated) && !got.LastUpdated.Equal(sess.LastUpdated) {
		t.Fatalf("last_updated not refreshed: %v vs %v", got.LastUpdated, sess.LastUpdated)
	}

	if err := store.Update("missing", models.SessionUpdate{Turns: &turns}); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()
	sess := store.Create()

	turns := []models.Message{{Role: models.RoleUser, Content: "hi"}}
	if err := store.Update(sess.ID, models.SessionUpdate{Turns: &turns}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := store.Get(sess.ID)
	got.Turns[0].Content = "mutated"

	again, _ := store.Get(sess.ID)
	if again.Turns[0].Content != "hi" {
		t.Fatalf("caller mutation leaked into store: %+v", again.Turns)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()
	sess := store.Create()

	if !store.Delete(sess.ID) {
		t.Fatalf("delete of existing session returned false")
	}
	if _, err := store.Get(sess.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("deleted session still retrievable: %v", err)
	}
	if store.Delete(sess.ID) {
		t.Fatalf("second delete returned true")
	}
}

func TestPruneIdle(t *testing.T) {
	t.Parallel()
	store := NewInMemorySessionStore()
	stale := store.Create()
	fresh := store.Create()

	// Backdate the stale session directly; LastUpdated is store-owned.
	store.mu.Lock()
	store.sessions[stale.ID].LastUpdated = time.Now().UTC().Add(-time.Hour)
	store.mu.Unlock()

	if n := store.PruneIdle(30 * time.Minute); n != 1 {
		t.Fatalf("expected 1 pruned session, got %d", n)
	}
	if _, err := store.Get(stale.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("stale session survived prune")
	}
	if _, err := store.Get(fresh.ID); err != nil {
		t.Fatalf("fresh session pruned: %v", err)
	}
}
