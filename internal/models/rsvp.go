package models

import (
	"strings"
	"time"
)

// Presence answers accepted on a response
const (
	PresenceYes = "Oui"
	PresenceNo  = "Non"
)

// Known values for the "invited by" category shown in the form
const (
	InviteParMariee  = "Mariée"
	InviteParMarie   = "Marié"
	InviteParFamille = "Famille"
)

// Rsvp represents one guest's response.
// CreatedAt is an RFC 3339 UTC string so lexicographic and chronological
// order agree, which keeps "newest first" a plain ORDER BY.
type Rsvp struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Nom       string `json:"nom" gorm:"not null"`
	Prenom    string `json:"prenom" gorm:"not null"`
	Contact   string `json:"contact" gorm:"not null"`
	InvitePar string `json:"invitePar" gorm:"column:invite_par;not null"`
	Presence  string `json:"presence" gorm:"not null"`
	CreatedAt string `json:"createdAt" gorm:"column:created_at;not null"`
}

// RsvpRequest is the submission payload before the server assigns
// an id and a timestamp.
type RsvpRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Contact   string `json:"contact"`
	InvitePar string `json:"invitePar"`
	Presence  string `json:"presence"`
}

// Trim strips surrounding whitespace from every field in place.
func (r *RsvpRequest) Trim() {
	r.Nom = strings.TrimSpace(r.Nom)
	r.Prenom = strings.TrimSpace(r.Prenom)
	r.Contact = strings.TrimSpace(r.Contact)
	r.InvitePar = strings.TrimSpace(r.InvitePar)
	r.Presence = strings.TrimSpace(r.Presence)
}

// Missing reports whether any required field is empty. Call Trim first.
func (r RsvpRequest) Missing() bool {
	return r.Nom == "" || r.Prenom == "" || r.Contact == "" ||
		r.InvitePar == "" || r.Presence == ""
}

// Record builds the persisted row for this request with the given
// creation timestamp.
func (r RsvpRequest) Record(createdAt string) Rsvp {
	return Rsvp{
		Nom:       r.Nom,
		Prenom:    r.Prenom,
		Contact:   r.Contact,
		InvitePar: r.InvitePar,
		Presence:  r.Presence,
		CreatedAt: createdAt,
	}
}

// Timestamp returns the current time in the stored createdAt format.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
