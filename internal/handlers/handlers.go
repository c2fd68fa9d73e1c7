package handlers

import (
	"log"
	"net/http"

	"mariage/internal/config"

	"github.com/gin-gonic/gin"
)

// cfg holds the loaded application configuration, set once at startup.
var cfg = config.Load()

// Init replaces the configuration used by the handlers. Main calls this
// after loading .env; tests call it with a fixture.
func Init(c *config.Config) {
	cfg = c
}

// handleError provides a consistent way to handle and log errors
func handleError(c *gin.Context, status int, message string, err error) {
	log.Printf("Error: %v", err)
	c.JSON(status, gin.H{"ok": false, "error": message})
}

// HealthHandler is a simple health check endpoint
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
