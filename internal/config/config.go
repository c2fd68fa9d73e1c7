package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port             string
	StaticDir        string
	EventStartUTC    string
	EventEndUTC      string
	EventLocation    string
	EventDescription string
	BrideName        string
	GroomName        string
}

// Load reads configuration from environment variables or defaults.
// Call godotenv.Load before this to pick up a local .env file.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "3002"),
		StaticDir:        getEnv("STATIC_DIR", ""),
		EventStartUTC:    getEnv("EVENT_START_UTC", "20251220T130000Z"),
		EventEndUTC:      getEnv("EVENT_END_UTC", "20251220T150000Z"),
		EventLocation:    getEnv("EVENT_LOCATION", "Venue TBD"),
		EventDescription: getEnv("EVENT_DESCRIPTION", "Cérémonie de mariage"),
		BrideName:        getEnv("BRIDE_NAME", "Bride"),
		GroomName:        getEnv("GROOM_NAME", "Groom"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
