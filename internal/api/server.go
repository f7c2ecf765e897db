// Package api provides the HTTP API server and handlers for the
// AssetBridge connector.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/assetbridgeapp/assetbridge-server/internal/ratelimit"
	"github.com/assetbridgeapp/assetbridge-server/internal/service"
)

// Inbound rate limit: the browser UI polls search as the user types,
// so the ceiling is generous.
const (
	inboundRateLimit = 10.0
	inboundBurst     = 20
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	assets  *service.AssetService
	catalog *service.CatalogService
	media   *service.MediaService
	limiter *ratelimit.KeyedLimiter
	router  *chi.Mux
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(assets *service.AssetService, catalog *service.CatalogService, media *service.MediaService, logger *slog.Logger) *Server {
	s := &Server{
		assets:  assets,
		catalog: catalog,
		media:   media,
		limiter: ratelimit.NewKeyed(inboundRateLimit, inboundBurst),
		router:  chi.NewRouter(),
		logger:  logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The picker UI runs inside the CMS, so requests come from its
	// origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Use(s.rateLimitMiddleware)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)

		r.Route("/assets", func(r chi.Router) {
			r.Get("/{id}", s.handleGetAsset)
			r.Get("/{id}/parameter", s.handleGetAssetParameter)
			r.Get("/{id}/transform", s.handleGetTransformURL)
		})

		r.Get("/folders", s.handleGetFolders)
		r.Get("/asset-types", s.handleGetAssetTypes)
		r.Get("/attributes", s.handleGetAttributes)
		r.Get("/token/validate", s.handleValidateToken)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.handleGetSettings)
			r.Put("/", s.handlePutSettings)
			r.Post("/sync", s.handleSyncSettings)
		})

		r.Post("/media-size", s.handleMediaSize)
	})
}
