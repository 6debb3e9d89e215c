// Package router sets up all HTTP routes and middleware chains for the
// site API. Content reads are open; the contact endpoint is rate limited
// per client IP.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sciallastudio/internal/handlers"
	"sciallastudio/internal/middleware"
)

// Options configures the middleware stack.
type Options struct {
	// AllowedOrigins may call the API from a browser.
	AllowedOrigins []string
	// Production enables HSTS.
	Production bool
	// TrustProxy takes the client address from True-Client-IP, X-Real-IP
	// or X-Forwarded-For. Enable only behind a proxy that sets them.
	TrustProxy bool
	// ContactLimiter throttles POST /api/contact. Nil disables throttling.
	ContactLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(opts Options, content *handlers.Content, site *handlers.Site, contact *handlers.Contact) chi.Router {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	if opts.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(opts.Production))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler)
	r.Get("/sitemap.xml", site.Sitemap)
	r.Get("/robots.txt", site.Robots)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", content.Projects)
			r.Get("/latest", content.Latest)
			r.Get("/slugs", content.Slugs)
			r.Get("/categories", content.Categories)
			r.Get("/categories/{category}", content.ByCategory)
			r.Get("/stats", content.Stats)
			r.Get("/{slug}", content.Project)
		})
		r.Get("/portfolio", content.Portfolio)

		r.Get("/cities", content.Cities)
		r.Get("/cities/{slug}", content.City)

		r.Get("/locale", site.Locale)

		r.Route("/contact", func(r chi.Router) {
			r.Get("/schema", contact.Schema)
			r.Group(func(r chi.Router) {
				if opts.ContactLimiter != nil {
					r.Use(opts.ContactLimiter.Middleware)
				}
				r.Post("/", contact.Submit)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Not Found"}`))
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
