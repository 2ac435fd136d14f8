package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rakhadjo/bookshelf-be/internal/api"
	"github.com/rakhadjo/bookshelf-be/internal/auth"
	"github.com/rakhadjo/bookshelf-be/internal/config"
	"github.com/rakhadjo/bookshelf-be/internal/logger"
	"github.com/rakhadjo/bookshelf-be/internal/models"
	"github.com/rakhadjo/bookshelf-be/internal/store"
	"github.com/rs/zerolog/log"
)

// seedBooks is the initial working set for a fresh process.
func seedBooks() []models.Book {
	return []models.Book{
		{
			ID:            1,
			Title:         "Marmut Merah Jambu",
			Author:        "Raditya Dika",
			Year:          2010,
			Available:     true,
			OwnerUsername: "initial_user",
		},
		{
			ID:            2,
			Title:         "Ngenest: Ngetawain Hidup A la Ernest",
			Author:        "Ernest Prakasa",
			Year:          2013,
			Available:     true,
			OwnerUsername: "initial_user",
		},
	}
}

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET not set, using development default")
	}

	// Set up the credential store, loading persisted users
	credentials, err := store.NewCredentialStore(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize credential store")
	}

	// Set up the in-memory book repository and token service
	books := store.NewBookRepository(seedBooks()...)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)

	// Set up router
	router := api.NewRouter(tokens, credentials, books)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
