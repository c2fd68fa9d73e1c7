package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"mariage/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// RsvpPDF formats the given responses as an A4 document: a centered
// title followed by one numbered line per record. Page breaks are
// handled by the document writer. Zero records yields a header-only
// document.
func RsvpPDF(presence string, rsvps []models.Rsvp) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("RSVP — Présence: %s", presence)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, r := range rsvps {
		line := fmt.Sprintf("%d. %s %s — %s — Invité par: %s — %s",
			i+1, r.Prenom, r.Nom, r.Contact, r.InvitePar, formatCreatedAt(r.CreatedAt))
		pdf.MultiCell(0, 7, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RsvpCSV renders the responses in the dashboard's export format.
func RsvpCSV(rsvps []models.Rsvp) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "nom", "prenom", "contact", "invitePar", "presence", "createdAt"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rsvps {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Nom, r.Prenom, r.Contact, r.InvitePar, r.Presence, r.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCreatedAt renders the stored timestamp for human readers,
// falling back to the raw value when it does not parse.
func formatCreatedAt(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("02/01/2006 15:04")
}
