package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tvshows-client/internal/config"
	"tvshows-client/internal/mockapi"

	"github.com/rs/zerolog/log"
)

// serveMock runs the local mock API until interrupted
func serveMock(cfg *config.Config) {
	store := mockapi.NewStore()
	if cfg.Mock.Seed {
		store.Seed()
	}

	var media mockapi.MediaStore = mockapi.NewMemoryMediaStore()
	if cfg.AWS.Enabled() {
		s3Store, err := mockapi.NewS3MediaStore(context.Background(), mockapi.S3Config{
			Region:    cfg.AWS.Region,
			Bucket:    cfg.AWS.S3Bucket,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
			Endpoint:  cfg.AWS.Endpoint,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 media store")
		}
		media = s3Store
		log.Info().Str("bucket", cfg.AWS.S3Bucket).Msg("Storing media in S3")
	}

	router := mockapi.NewRouter(mockapi.Deps{
		Store:  store,
		Tokens: mockapi.NewTokenIssuer(cfg.Mock.JWTSecret),
		Media:  media,
		Logger: log.Logger,
	})

	srv := &http.Server{
		Addr:         cfg.Mock.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("host", cfg.Mock.Host).
			Int("port", cfg.Mock.Port).
			Msg("Starting mock API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Mock API failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down mock API...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Mock API forced to shutdown")
	}

	log.Info().Msg("Mock API exited")
}
