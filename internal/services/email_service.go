package services

import (
	"fmt"
	"os"

	"mariage/internal/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService struct {
	client    *sendgrid.Client
	apiKey    string
	fromEmail string
	fromName  string
	toEmail   string
}

func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	toEmail := os.Getenv("RSVP_NOTIFY_EMAIL")

	client := sendgrid.NewSendClient(apiKey)

	return &EmailService{
		client:    client,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

// Enabled reports whether notification mail is configured
func (s *EmailService) Enabled() bool {
	return s.apiKey != "" && s.toEmail != ""
}

// SendNewRsvpEmail notifies the couple that a guest has responded
func (s *EmailService) SendNewRsvpEmail(rsvp models.Rsvp) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.toEmail)
	subject := fmt.Sprintf("Nouvelle réponse RSVP: %s %s", rsvp.Prenom, rsvp.Nom)
	plainContent := fmt.Sprintf("%s %s (%s) — Invité par: %s — Présence: %s",
		rsvp.Prenom, rsvp.Nom, rsvp.Contact, rsvp.InvitePar, rsvp.Presence)
	htmlContent := fmt.Sprintf("<p><strong>%s %s</strong> (%s)<br>Invité par: %s<br>Présence: %s</p>",
		rsvp.Prenom, rsvp.Nom, rsvp.Contact, rsvp.InvitePar, rsvp.Presence)

	message := mail.NewSingleEmail(from, subject, to, plainContent, htmlContent)
	_, err := s.client.Send(message)
	return err
}
