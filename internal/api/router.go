package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/event-service/internal/api/handlers"
	"github.com/isdelr/event-service/internal/services"
	"github.com/isdelr/event-service/internal/websocket"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(hub *websocket.Hub, eventService services.EventServiceProvider, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log.Logger))
	r.Use(middleware.Recoverer)

	// Any origin by default, never with credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	eventHandler := handlers.NewEventHandler(eventService)
	wsHandler := handlers.NewWebSocketHandler(hub, allowedOrigins)

	r.Get("/health", handlers.Health)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.GetAll)
		r.Post("/", eventHandler.Create)
		r.Get("/{id}", eventHandler.Get)
	})

	// Live feed of created events
	r.Get("/ws/events", wsHandler.Serve)

	return r
}
