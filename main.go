package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/config"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/router"
)

func main() {
	// A local .env is optional, the environment may already be set
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()

	// Create the data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Default categories have to exist before the first request
	err = models.SeedDefaultCategories(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group(""), tokens)

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
