package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	logger2 "github.com/vladislavprovich/drivehub/pkg/logger"
)

func NewRouter(handler Handler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger2.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)

	routeURL := fmt.Sprintf("/api/%s", cfg.APIVersion)
	mux.Route(routeURL, func(r chi.Router) {
		r.Route("/instructors", func(r chi.Router) {
			r.Get("/", handler.ListInstructors)
			r.Get("/{id}", handler.GetInstructorByID)
			r.Post("/{id}/refresh", handler.RefreshInstructor)
		})

		r.Route("/cache", func(r chi.Router) {
			r.Get("/stats", handler.CacheStats)
			r.Post("/reset-stats", handler.ResetStats)
			r.Post("/clear-expired", handler.ClearExpired)
			r.Delete("/instructors/{id}", handler.InvalidateInstructor)
			r.Delete("/", handler.ClearCache)
		})
	})

	return mux
}
