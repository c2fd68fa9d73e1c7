// Package client implements the guest-side submission flow: validate,
// try the server, then fall back to local persistence so a response is
// never silently lost.
package client

import (
	"context"

	"mariage/internal/models"
)

// Store is one local fallback tier. Stores are tried in order by the
// Submitter; a record saved here never reaches the server unless the
// guest resubmits.
type Store interface {
	// Name identifies the tier in submission outcomes.
	Name() string
	// Save persists one record, assigning a local id, and returns the
	// stored record. The record's CreatedAt is already set by the caller.
	Save(ctx context.Context, rsvp models.Rsvp) (models.Rsvp, error)
	// List returns everything saved locally, oldest first. Used only for
	// the guest's own "your past responses" view.
	List(ctx context.Context) ([]models.Rsvp, error)
}
