package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/isdelr/event-service/internal/api"
	"github.com/isdelr/event-service/internal/clock"
	"github.com/isdelr/event-service/internal/config"
	"github.com/isdelr/event-service/internal/logger"
	"github.com/isdelr/event-service/internal/services"
	"github.com/isdelr/event-service/internal/store"
	"github.com/isdelr/event-service/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	// Set up the in-memory event store
	eventStore := store.NewEventStore()

	// Set up WebSocket Hub for the live event feed
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(eventStore, hub, clock.NewSystem())

	// Set up router
	router := api.NewRouter(hub, eventService, cfg.CORSOrigins)

	// Set up server
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		serverErrors <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("addr", srv.Addr).Msg("Error starting the application")
		}
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Int("events", eventStore.Len()).Msg("Server exiting")
}
