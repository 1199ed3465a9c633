package config

import (
	"os"
	"time"
)

// Config holds all runtime configuration. Every value has a development
// default so that a bare `go run .` works.
type Config struct {
	DBPath       string
	JWTSecret    string
	JWTExpiresIn time.Duration
}

func Load() Config {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/spendwise.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "spendwise-dev-secret-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			jwtExpiresIn = d
		}
	}

	return Config{
		DBPath:       dbPath,
		JWTSecret:    jwtSecret,
		JWTExpiresIn: jwtExpiresIn,
	}
}
