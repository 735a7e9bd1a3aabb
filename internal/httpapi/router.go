package httpapi

import (
	"net/http"
	"time"

	"github.com/bengobox/clock-service/internal/httpapi/handlers"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	HealthHandler  http.HandlerFunc
	DateHandler    http.HandlerFunc
	MetricsHandler http.Handler
	EnableDocs     bool

	AllowedOrigins []string
	RequestTimeout time.Duration

	AccessLog  func(http.Handler) http.Handler
	Instrument func(http.Handler) http.Handler
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if deps.AccessLog != nil {
		r.Use(deps.AccessLog)
	}
	if deps.Instrument != nil {
		r.Use(deps.Instrument)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)
	if deps.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.RequestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler)
	}
	if deps.DateHandler != nil {
		r.Get("/date", deps.DateHandler)
	}
	if deps.MetricsHandler != nil {
		r.Method("GET", "/metrics", deps.MetricsHandler)
	}
	if deps.EnableDocs {
		r.Get("/openapi.json", handlers.OpenAPIJSON)
		r.Get("/docs", handlers.SwaggerUI)
	}

	return r
}
