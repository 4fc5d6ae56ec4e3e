package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"aeromart/internal/api"
	"aeromart/internal/db"
	"aeromart/internal/jobs"
	"aeromart/internal/logging"
	"aeromart/internal/metrics"
	"aeromart/internal/middleware"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.Client, upSince))
	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	RegisterAPIRoutes(r, deps)

	jobs.InitializeJobs()

	return r
}
