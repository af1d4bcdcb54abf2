package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/mockapi-backend/internal/config"
	"github.com/heartmarshall/mockapi-backend/internal/observability"
	"github.com/heartmarshall/mockapi-backend/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP surface is built from.
type RouterDeps struct {
	Config   config.Config
	Logger   *slog.Logger
	Health   *HealthHandler
	Auth     *AuthHandler
	Projects *ProjectHandler
	Data     *DataHandler
	// Session authenticates the management API.
	Session middleware.Middleware
	// Limiter backs the auth and public data rate limits.
	Limiter middleware.Limiter
	// Metrics may be nil, which disables instrumentation and /metrics.
	Metrics *observability.Metrics
}

// NewRouter builds the chi router:
//
//	/live, /ready, /health             probes
//	/metrics                           Prometheus exposition
//	/api/auth/...                      account endpoints, IP rate limited
//	/api/projects/...                  session-authenticated management API
//	/api/{projectId}/{resource}[/{id}] public data API, API key authenticated,
//	                                   limited per client address and per key
func NewRouter(d RouterDeps) http.Handler {
	cfg := d.Config
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	if cfg.Server.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(chimiddleware.RequestSize(cfg.Server.MaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil && cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, d.Metrics.Handler())
	}

	cors := middleware.CORS(cfg.CORS)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(cors)
		r.Use(middleware.RateLimit(d.Limiter, middleware.RateLimitPolicy{
			Scope:     "auth",
			PerMinute: cfg.RateLimit.AuthPerMinute,
			Key:       middleware.ClientIP,
		}, d.Logger, d.Metrics))

		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)
		r.With(d.Session).Get("/me", d.Auth.Me)
	})

	r.Route("/api/projects", func(r chi.Router) {
		r.Use(middleware.Chain(cors, d.Session))

		r.Get("/", d.Projects.List)
		r.Post("/", d.Projects.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", d.Projects.Get)
			r.Delete("/", d.Projects.Delete)
			r.Post("/resources", d.Projects.CreateResource)
			r.Route("/resources/{resource}", func(r chi.Router) {
				r.Post("/fields", d.Projects.AddField)
				r.Put("/fields", d.Projects.UpdateField)
				r.Delete("/fields/{field}", d.Projects.DeleteField)
				r.Post("/generate", d.Projects.Generate)
				r.Get("/data", d.Projects.ListData)
				r.Delete("/data/{recordId}", d.Projects.DeleteData)
			})
		})
	})

	r.Route("/api/{projectId}/{resource}", func(r chi.Router) {
		r.Use(middleware.PublicCORS)
		r.Use(middleware.RateLimit(d.Limiter, middleware.RateLimitPolicy{
			Scope:     "data_ip",
			PerMinute: cfg.RateLimit.DataPerIPMinute,
			Key:       middleware.ClientIP,
		}, d.Logger, d.Metrics))
		r.Use(middleware.RateLimit(d.Limiter, middleware.RateLimitPolicy{
			Scope:     "data",
			PerMinute: cfg.RateLimit.DataPerMinute,
			Key:       middleware.APIKey,
		}, d.Logger, d.Metrics))

		r.Get("/", d.Data.List)
		r.Post("/", d.Data.Create)
		r.Get("/{id}", d.Data.Get)
		r.Put("/{id}", d.Data.Replace)
		r.Patch("/{id}", d.Data.Patch)
		r.Delete("/{id}", d.Data.Delete)
	})

	return r
}
