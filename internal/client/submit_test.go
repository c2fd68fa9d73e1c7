package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"mariage/internal/models"
)

// stubStore is an in-memory Store for exercising the fallback chain.
type stubStore struct {
	name  string
	fail  bool
	saved []models.Rsvp
}

func (s *stubStore) Name() string { return s.name }

func (s *stubStore) Save(_ context.Context, rsvp models.Rsvp) (models.Rsvp, error) {
	if s.fail {
		return models.Rsvp{}, errors.New("store unavailable")
	}
	rsvp.ID = int64(len(s.saved) + 1)
	s.saved = append(s.saved, rsvp)
	return rsvp, nil
}

func (s *stubStore) List(context.Context) ([]models.Rsvp, error) {
	return s.saved, nil
}

func validRequest() models.RsvpRequest {
	return models.RsvpRequest{
		Nom:       "Dupont",
		Prenom:    "Alice",
		Contact:   "a@x.com",
		InvitePar: models.InviteParFamille,
		Presence:  models.PresenceYes,
	}
}

// okServer returns a test server accepting submissions and counting them.
func okServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var submissions atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			submissions.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":true}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"data":[]}`))
	}))
	t.Cleanup(server.Close)
	return server, &submissions
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("validation failure makes no network call and saves nothing", func(t *testing.T) {
		server, submissions := okServer(t)
		fallback := &stubStore{name: "stub"}
		submitter := NewSubmitter(New(server.URL, nil), fallback)

		for _, request := range []models.RsvpRequest{
			{},
			{Nom: "Dupont", Prenom: "Alice", Contact: "a@x.com", InvitePar: "Famille", Presence: "   "},
			{Nom: " \t", Prenom: "Alice", Contact: "a@x.com", InvitePar: "Famille", Presence: "Oui"},
		} {
			if _, err := submitter.Submit(ctx, request); !errors.Is(err, ErrValidation) {
				t.Errorf("Request %+v: got %v, want ErrValidation", request, err)
			}
		}
		if n := submissions.Load(); n != 0 {
			t.Errorf("Expected no network calls, server saw %d", n)
		}
		if len(fallback.saved) != 0 {
			t.Errorf("Expected no fallback writes, got %d", len(fallback.saved))
		}
	})

	t.Run("reachable server wins and fallback stays untouched", func(t *testing.T) {
		server, submissions := okServer(t)
		fallback := &stubStore{name: "stub"}
		submitter := NewSubmitter(New(server.URL, nil), fallback)

		outcome, err := submitter.Submit(ctx, validRequest())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.Saved != SavedServer {
			t.Errorf("Expected SavedServer, got %q", outcome.Saved)
		}
		if !outcome.OfferInvitation() {
			t.Error("Expected invitation offer for a confirmed presence")
		}
		if n := submissions.Load(); n != 1 {
			t.Errorf("Expected exactly one submission, server saw %d", n)
		}
		if len(fallback.saved) != 0 {
			t.Errorf("Fallback should be untouched, got %d writes", len(fallback.saved))
		}
	})

	t.Run("no invitation offer for a declined presence", func(t *testing.T) {
		server, _ := okServer(t)
		submitter := NewSubmitter(New(server.URL, nil))

		request := validRequest()
		request.Presence = models.PresenceNo
		outcome, err := submitter.Submit(ctx, request)
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.OfferInvitation() {
			t.Error("Expected no invitation offer for presence Non")
		}
	})

	t.Run("unreachable server falls back to the first tier", func(t *testing.T) {
		// Grab a URL that refuses connections
		server := httptest.NewServer(http.NotFoundHandler())
		base := server.URL
		server.Close()

		fileStore := NewFileStore(filepath.Join(t.TempDir(), "fallback.json"))
		submitter := NewSubmitter(New(base, nil), fileStore)

		outcome, err := submitter.Submit(ctx, validRequest())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.Saved != SavedLocal || outcome.Store != "file" {
			t.Errorf("Expected local save in the file store, got %+v", outcome)
		}
		if outcome.Record.ID != 1 {
			t.Errorf("Expected locally-assigned id 1, got %d", outcome.Record.ID)
		}
		if outcome.Record.CreatedAt == "" {
			t.Error("Expected a locally-generated timestamp")
		}
		want := validRequest()
		got := outcome.Record
		if got.Nom != want.Nom || got.Prenom != want.Prenom || got.Contact != want.Contact ||
			got.InvitePar != want.InvitePar || got.Presence != want.Presence {
			t.Errorf("Fallback record mismatch: %+v", got)
		}
	})

	t.Run("server 500 is absorbed into the fallback chain", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"ok":false,"error":"Erreur serveur"}`, http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		fallback := &stubStore{name: "stub"}
		submitter := NewSubmitter(New(server.URL, nil), fallback)

		outcome, err := submitter.Submit(ctx, validRequest())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.Saved != SavedLocal {
			t.Errorf("Expected local save, got %q", outcome.Saved)
		}
	})

	t.Run("broken first tier falls through to the second", func(t *testing.T) {
		tier1 := &stubStore{name: "sqlite", fail: true}
		tier2 := &stubStore{name: "file"}
		submitter := NewSubmitter(nil, tier1, tier2)

		outcome, err := submitter.Submit(ctx, validRequest())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if outcome.Store != "file" {
			t.Errorf("Expected the second tier to win, got %q", outcome.Store)
		}
	})

	t.Run("all tiers failing surfaces a single generic error", func(t *testing.T) {
		submitter := NewSubmitter(nil,
			&stubStore{name: "sqlite", fail: true},
			&stubStore{name: "file", fail: true},
		)

		if _, err := submitter.Submit(ctx, validRequest()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("Got %v, want ErrUnavailable", err)
		}
	})

	t.Run("concurrent submit on the same submitter is rejected", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
			w.Write([]byte(`{"ok":true}`))
		}))
		t.Cleanup(server.Close)
		t.Cleanup(func() { close(release) })

		submitter := NewSubmitter(New(server.URL, nil))
		done := make(chan error, 1)
		go func() {
			_, err := submitter.Submit(ctx, validRequest())
			done <- err
		}()

		<-entered
		if _, err := submitter.Submit(ctx, validRequest()); !errors.Is(err, ErrBusy) {
			t.Errorf("Got %v, want ErrBusy", err)
		}

		release <- struct{}{}
		if err := <-done; err != nil {
			t.Errorf("First submit failed: %v", err)
		}
	})
}
