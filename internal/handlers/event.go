package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"mariage/internal/invite"
	"mariage/internal/services"

	"github.com/gin-gonic/gin"
)

// InvitationImage renders the personalized invitation for a confirmed
// guest and streams it as a PNG download.
func InvitationImage(c *gin.Context) {
	prenom := strings.TrimSpace(c.Query("prenom"))
	nom := strings.TrimSpace(c.Query("nom"))
	if prenom == "" || nom == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Champs manquants"})
		return
	}

	data, err := invite.Render(prenom, nom)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	filename := invite.Filename(prenom, nom)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", data)
}

// CalendarEvent serves the wedding as an ICS file for the
// add-to-calendar link.
func CalendarEvent(c *gin.Context) {
	event := services.Event{
		Summary:     fmt.Sprintf("Mariage — %s & %s", cfg.BrideName, cfg.GroomName),
		Location:    cfg.EventLocation,
		Description: cfg.EventDescription,
		StartUTC:    cfg.EventStartUTC,
		EndUTC:      cfg.EventEndUTC,
	}

	c.Header("Content-Disposition", `attachment; filename="event.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(services.EventICS(event)))
}
