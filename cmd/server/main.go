package main

import (
	"fmt"
	"log"
	"net/http"

	"mariage/internal/config"
	"mariage/internal/database"
	"mariage/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env in development; in production the environment is real
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	handlers.Init(cfg)

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure trusted proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})

	// The form and the admin dashboard may be served from another origin
	router.Use(cors.Default())

	api := router.Group("/api")
	{
		api.POST("/rsvp", handlers.CreateRsvp)
		api.GET("/rsvp", handlers.ListRsvps)
		api.DELETE("/rsvp/:id", handlers.DeleteRsvp)
		api.GET("/rsvp/export-pdf", handlers.ExportRsvpPDF)
		api.GET("/rsvp/export-csv", handlers.ExportRsvpCSV)
		api.GET("/rsvp/stats", handlers.RsvpStats)
		api.POST("/visit", handlers.RecordVisit)
		api.GET("/invitation", handlers.InvitationImage)
		api.GET("/event.ics", handlers.CalendarEvent)
		api.GET("/health", handlers.HealthHandler)
	}

	// Serve the static frontend when configured
	if cfg.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	// Start the server
	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
