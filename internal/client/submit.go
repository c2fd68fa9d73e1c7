package client

import (
	"context"
	"errors"
	"sync/atomic"

	"mariage/internal/models"
)

var (
	// ErrValidation means a required field was empty; nothing was sent
	// or saved. The guest can correct the form and try again.
	ErrValidation = errors.New("tous les champs sont requis")
	// ErrBusy means a submission is already in flight on this Submitter.
	ErrBusy = errors.New("une soumission est déjà en cours")
	// ErrUnavailable means the server and every fallback tier failed.
	ErrUnavailable = errors.New("une erreur est survenue, réessayez")
)

// Saved tells where a submission ended up.
type Saved string

const (
	SavedServer Saved = "server"
	SavedLocal  Saved = "local"
)

// Outcome is the single settlement value of one submission attempt.
type Outcome struct {
	Saved   Saved
	Store   string // fallback tier name when Saved == SavedLocal
	Record  models.Rsvp
	Message string
}

// OfferInvitation reports whether the guest should be offered the
// personalized invitation download (only confirmed presences).
func (o Outcome) OfferInvitation() bool {
	return o.Record.Presence == models.PresenceYes
}

// Submitter runs submission attempts against one server with an ordered
// list of local fallback stores. One attempt at a time per Submitter;
// concurrent attempts from other devices or instances are not
// deduplicated.
type Submitter struct {
	api    *API
	stores []Store
	busy   atomic.Bool
}

// NewSubmitter builds a Submitter. api may be nil when no endpoint
// could be resolved; every attempt then goes straight to the fallback
// stores.
func NewSubmitter(api *API, stores ...Store) *Submitter {
	return &Submitter{api: api, stores: stores}
}

// Submit runs one attempt: validate, try the server, then each fallback
// store in order. Each tier is tried exactly once. The returned Outcome
// reports where the record was saved; an error means the guest should
// be asked to retry.
func (s *Submitter) Submit(ctx context.Context, request models.RsvpRequest) (Outcome, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}
	defer s.busy.Store(false)

	request.Trim()
	if request.Missing() {
		return Outcome{}, ErrValidation
	}

	if s.api != nil {
		if err := s.api.Submit(ctx, request); err == nil {
			return Outcome{
				Saved:   SavedServer,
				Record:  request.Record(""),
				Message: "Enregistré côté serveur avec succès. Merci !",
			}, nil
		}
		// Network and server failures are absorbed into the fallback
		// chain; the guest only sees an error if every tier fails too.
	}

	record := request.Record(models.Timestamp())
	for _, store := range s.stores {
		saved, err := store.Save(ctx, record)
		if err != nil {
			continue
		}
		return Outcome{
			Saved:   SavedLocal,
			Store:   store.Name(),
			Record:  saved,
			Message: "Enregistré localement. Merci !",
		}, nil
	}

	return Outcome{}, ErrUnavailable
}
