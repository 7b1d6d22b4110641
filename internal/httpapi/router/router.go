package router

import (
	"fmt"
	"net/http"

	"chiku/backend/internal/config"
	"chiku/backend/internal/httpapi/handlers"
	appmw "chiku/backend/internal/httpapi/middleware"
	"chiku/backend/internal/httpapi/openapi"
	"chiku/backend/internal/httpapi/response"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// New wires the API routes. metrics may be nil, in which case no collector
// runs and /metrics is not served.
func New(cfg config.Settings, logger *zap.Logger, metrics *appmw.Metrics) (http.Handler, error) {
	systemHandler, err := handlers.NewSystemHandler()
	if err != nil {
		return nil, fmt.Errorf("create system handler: %w", err)
	}

	openapiHandler := openapi.NewHandler()

	r := chi.NewRouter()
	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed(http.MethodGet, http.MethodHead))

	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(appmw.RequestID)
	r.Use(appmw.AccessLog(logger))
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(appmw.Recoverer(logger))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(corsOptions(cfg)))
	r.Use(chimw.GetHead)

	r.Get("/api/health", systemHandler.Health)
	r.Get("/api/birthday-config", systemHandler.BirthdayConfig)

	r.Get("/openapi.json", openapiHandler.Document)
	r.Get("/docs", openapiHandler.Docs)

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	return r, nil
}

func corsOptions(cfg config.Settings) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions,
			http.MethodPatch, http.MethodPost, http.MethodPut,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{appmw.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}

	// A literal "*" cannot be combined with credentials in browsers, so the
	// request origin is echoed back instead.
	if cfg.AllowsAnyOrigin() {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}
	return opts
}
