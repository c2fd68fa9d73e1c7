package client

import (
	"context"
	"path/filepath"
	"testing"

	"mariage/internal/models"
)

func sampleRsvp() models.Rsvp {
	return models.Rsvp{
		Nom:       "Dupont",
		Prenom:    "Alice",
		Contact:   "a@x.com",
		InvitePar: models.InviteParFamille,
		Presence:  models.PresenceYes,
		CreatedAt: "2025-11-01T10:00:00Z",
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "fallback.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	t.Run("Save assigns sequential ids", func(t *testing.T) {
		first, err := store.Save(ctx, sampleRsvp())
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if first.ID != 1 {
			t.Errorf("Expected id 1, got %d", first.ID)
		}

		second := sampleRsvp()
		second.Nom = "Martin"
		saved, err := store.Save(ctx, second)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if saved.ID != 2 {
			t.Errorf("Expected id 2, got %d", saved.ID)
		}
	})

	t.Run("Save fills in a missing timestamp", func(t *testing.T) {
		rsvp := sampleRsvp()
		rsvp.CreatedAt = ""
		saved, err := store.Save(ctx, rsvp)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if saved.CreatedAt == "" {
			t.Error("Expected a generated timestamp")
		}
	})

	t.Run("List returns stored fields unchanged", func(t *testing.T) {
		rsvps, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rsvps) != 3 {
			t.Fatalf("Expected 3 records, got %d", len(rsvps))
		}
		got := rsvps[0]
		want := sampleRsvp()
		if got.Nom != want.Nom || got.Prenom != want.Prenom || got.Contact != want.Contact ||
			got.InvitePar != want.InvitePar || got.Presence != want.Presence || got.CreatedAt != want.CreatedAt {
			t.Errorf("Record mismatch: got %+v, want %+v", got, want)
		}
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "fallback.json")

	t.Run("Save assigns id length+1 and persists", func(t *testing.T) {
		store := NewFileStore(path)

		first, err := store.Save(ctx, sampleRsvp())
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if first.ID != 1 {
			t.Errorf("Expected id 1, got %d", first.ID)
		}

		second := sampleRsvp()
		second.Prenom = "Benoît"
		saved, err := store.Save(ctx, second)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if saved.ID != 2 {
			t.Errorf("Expected id 2, got %d", saved.ID)
		}
	})

	t.Run("a new instance reads the same file", func(t *testing.T) {
		store := NewFileStore(path)
		rsvps, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rsvps) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(rsvps))
		}
		if rsvps[1].Prenom != "Benoît" || rsvps[1].ID != 2 {
			t.Errorf("Unexpected second record: %+v", rsvps[1])
		}
	})

	t.Run("List on a missing file is empty, not an error", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
		rsvps, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rsvps) != 0 {
			t.Errorf("Expected no records, got %d", len(rsvps))
		}
	})
}
