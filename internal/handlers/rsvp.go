package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"mariage/internal/database"
	"mariage/internal/models"
	"mariage/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateRsvp validates and inserts one guest response
func CreateRsvp(c *gin.Context) {
	var request models.RsvpRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		log.Printf("Error: Invalid RSVP payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Champs manquants"})
		return
	}

	request.Trim()
	if request.Missing() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Champs manquants"})
		return
	}

	rsvp := request.Record(models.Timestamp())
	if err := database.GetDB().Create(&rsvp).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	// Best-effort notification to the couple; never affects the response
	if svc := services.NewEmailService(); svc.Enabled() {
		go func() {
			if err := svc.SendNewRsvpEmail(rsvp); err != nil {
				log.Printf("Warning: Failed to send RSVP notification: %v", err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListRsvps returns the 200 newest responses, most recent first
func ListRsvps(c *gin.Context) {
	var rsvps []models.Rsvp
	err := database.GetDB().
		Order("created_at DESC, id DESC").
		Limit(200).
		Find(&rsvps).Error
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}
	if rsvps == nil {
		rsvps = []models.Rsvp{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": rsvps})
}

// DeleteRsvp removes one response by id. Deleting an id that does not
// exist succeeds with deleted=0.
func DeleteRsvp(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "ID invalide"})
		return
	}

	result := database.GetDB().Delete(&models.Rsvp{}, id)
	if result.Error != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", result.Error)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": result.RowsAffected})
}

// ExportRsvpPDF streams the responses matching the presence filter as a
// paginated PDF, newest first. Defaults to confirmed guests.
func ExportRsvpPDF(c *gin.Context) {
	presence := c.DefaultQuery("presence", models.PresenceYes)

	var rsvps []models.Rsvp
	err := database.GetDB().
		Where("presence = ?", presence).
		Order("created_at DESC, id DESC").
		Find(&rsvps).Error
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	data, err := services.RsvpPDF(presence, rsvps)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	filename := fmt.Sprintf("rsvp-presence-%s.pdf", strings.ToLower(presence))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportRsvpCSV streams the filtered responses as CSV, newest first.
// Both filters are optional.
func ExportRsvpCSV(c *gin.Context) {
	query := database.GetDB().Order("created_at DESC, id DESC")
	if presence := c.Query("presence"); presence != "" {
		query = query.Where("presence = ?", presence)
	}
	if invitePar := c.Query("invitePar"); invitePar != "" {
		query = query.Where("invite_par = ?", invitePar)
	}

	var rsvps []models.Rsvp
	if err := query.Find(&rsvps).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	data, err := services.RsvpCSV(rsvps)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rsvp.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// RsvpStats returns the totals shown on the dashboard counters
func RsvpStats(c *gin.Context) {
	db := database.GetDB()

	var total, oui, non int64
	if err := db.Model(&models.Rsvp{}).Count(&total).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}
	if err := db.Model(&models.Rsvp{}).Where("presence = ?", models.PresenceYes).Count(&oui).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}
	if err := db.Model(&models.Rsvp{}).Where("presence = ?", models.PresenceNo).Count(&non).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "total": total, "oui": oui, "non": non})
}
