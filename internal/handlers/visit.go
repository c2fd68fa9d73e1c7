package handlers

import (
	"net/http"

	"mariage/internal/database"
	"mariage/internal/models"

	"github.com/gin-gonic/gin"
)

type visitRequest struct {
	Path string `json:"path"`
	UA   string `json:"ua"`
}

// RecordVisit logs one page view. The body is optional; missing values
// fall back to the request headers like the original tracker did.
func RecordVisit(c *gin.Context) {
	var request visitRequest
	// A missing or malformed body is fine, headers cover the defaults
	_ = c.ShouldBindJSON(&request)

	path := request.Path
	if path == "" {
		path = c.GetHeader("Referer")
	}
	if path == "" {
		path = "/"
	}

	ua := request.UA
	if ua == "" {
		ua = c.GetHeader("User-Agent")
	}
	if ua == "" {
		ua = "unknown"
	}

	visit := models.Visit{Path: path, UA: ua, TS: models.Timestamp()}
	if err := database.GetDB().Create(&visit).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Erreur serveur", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
