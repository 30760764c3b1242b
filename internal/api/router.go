package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ayush/idea-to-launch/backend/internal/middleware"
)

const (
	serviceName    = "SaaS Idea-to-Launch API"
	serviceVersion = "1.0.0"
	prefixService  = "Error reading service status"
)

// RouterOptions configures the cross-cutting parts of the router.
type RouterOptions struct {
	AllowedOrigins []string
	// Verbose exposes panic messages to clients.
	Verbose bool
	Log     logrus.FieldLogger
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
}

// NewRouter mounts every endpoint on a chi router.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Log))
	r.Use(middleware.Recoverer(opts.Verbose, opts.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.handle(prefixService, h.Root))
	r.Get("/health", h.handle(prefixService, h.Health))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/topics", func(r chi.Router) {
		r.Get("/search", h.handle(prefixTrends, h.SearchTopics))
		r.Post("/search", h.handle(prefixTrends, h.SearchTopicsPost))
		r.Get("/trending", h.handle(prefixTrendingList, h.TrendingTopics))
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/search", h.handle(prefixProducts, h.SearchProducts))
		r.Post("/search", h.handle(prefixProducts, h.SearchProductsPost))
		r.Get("/categories", h.handle(prefixProducts, h.ProductCategories))
		r.Get("/trending", h.handle(prefixTrendingProducts, h.TrendingProducts))
	})

	r.Route("/api/generate", func(r chi.Router) {
		r.Post("/offer", h.handle(prefixOffer, h.GenerateOffer))
		r.Post("/ads", h.handle(prefixAds, h.GenerateAds))
		r.Get("/offer/templates", h.handle(prefixTemplates, h.OfferTemplates))
		r.Get("/ads/platforms", h.handle(prefixPlatforms, h.AdPlatforms))
	})

	return r
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{
		"message": serviceName,
		"version": serviceVersion,
		"status":  "running",
		"docs":    "/docs",
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"openai_configured": h.info.OpenAIConfigured,
		"database_url":      h.info.DatabaseConfigured,
		"environment":       h.info.Environment,
	})
}
