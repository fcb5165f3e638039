package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL         string
	APIPort             string
	AuthSecret          string
	FirebaseCredentials string
	GCSCredentials      string
	GCSBucket           string
	LinkBaseURL         string
	HashidSalt          string
	DebugExplainQueries bool
}

// Load reads configuration from the environment (and .env if present).
// Every missing required variable is reported in one error.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		APIPort:             os.Getenv("API_PORT"),
		AuthSecret:          os.Getenv("AUTH_SECRET"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		GCSCredentials:      os.Getenv("GCS_CREDENTIALS_FILE"),
		GCSBucket:           getEnv("GCS_BUCKET", "howler-event-images"),
		LinkBaseURL:         getEnv("LINK_BASE_URL", "https://howler.andyfx.net"),
		HashidSalt:          getEnv("HASHID_SALT", "howler"),
		DebugExplainQueries: os.Getenv("DEBUG_EXPLAIN_QUERIES") != "",
	}

	var missing []string
	for _, required := range []struct {
		key   string
		value string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"API_PORT", cfg.APIPort},
		{"AUTH_SECRET", cfg.AuthSecret},
		{"FIREBASE_CREDENTIALS_FILE", cfg.FirebaseCredentials},
		{"GCS_CREDENTIALS_FILE", cfg.GCSCredentials},
	} {
		if required.value == "" {
			missing = append(missing, required.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("invalid env vars, missing: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
