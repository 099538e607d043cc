package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hestiadash/hestia/internal/http/bang"
	"github.com/hestiadash/hestia/internal/http/dashboard"
	"github.com/hestiadash/hestia/internal/http/finance"
	"github.com/hestiadash/hestia/internal/http/link"
	"github.com/hestiadash/hestia/internal/http/owner"
	"github.com/hestiadash/hestia/internal/http/reminder"
	"github.com/hestiadash/hestia/internal/http/user"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
}

type Handlers struct {
	Users     *user.Handler
	Bangs     *bang.Handler
	Links     *link.Handler
	Reminders *reminder.Handler
	Finance   *finance.Handler
	Dashboard *dashboard.Handler
}

func New(opts Options, metrics *Metrics, resolver owner.Resolver, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", owner.Header},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Handle("/metrics", metrics.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/opensearch/{apiKey}/opensearch.xml", h.Bangs.OpenSearch)

	router.Route("/search/{apiKey}", func(r chi.Router) {
		r.Use(owner.Middleware(resolver))
		h.Bangs.SearchRoutes(r)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.AllowContentType("application/json")).Post("/signup", h.Users.Signup)

		r.Group(func(r chi.Router) {
			r.Use(owner.Middleware(resolver))

			r.Route("/me", h.Users.Routes)
			r.Route("/home", h.Dashboard.Routes)

			r.Route("/bangs", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Bangs.Routes(r)
			})

			r.Route("/links", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Links.Routes(r)
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Reminders.Routes(r)
			})

			r.Route("/finance", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Finance.Routes(r)
			})
		})
	})

	return router
}
