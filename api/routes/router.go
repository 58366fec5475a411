package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourarttoy/arttoy-backend/api/controllers"
	"github.com/yourarttoy/arttoy-backend/api/middleware"
	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/internal/orders"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
	"github.com/yourarttoy/arttoy-backend/pkg/metrics"
)

// Params carries everything the router wires together.
type Params struct {
	Config  *config.Config
	Logger  *logger.Logger
	Users   middleware.UserLoader
	ArtToys arttoys.Service
	Orders  orders.Service

	Limiter  middleware.WindowLimiter
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry

	// Readiness dependencies keyed by name ("database", "redis").
	Pingers map[string]controllers.Pinger
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App),
		middleware.RateLimit(p.Limiter, cfg.RateLimit, logg),
	)
	if p.Metrics != nil {
		r.Use(middleware.Metrics(p.Metrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Pingers))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	authed := middleware.Auth(cfg.JWT, p.Users, logg)
	adminOnly := middleware.RequireRole(enums.UserRoleAdmin, logg)
	memberOnly := middleware.RequireRole(enums.UserRoleMember, logg)

	r.Route("/api/v1/arttoys", func(r chi.Router) {
		r.Get("/", controllers.ListArtToys(p.ArtToys, logg))
		r.Get("/search", controllers.SearchArtToysByTags(p.ArtToys, logg))
		r.Get("/{id}", controllers.GetArtToy(p.ArtToys, logg))

		r.Group(func(r chi.Router) {
			r.Use(authed, adminOnly)
			r.Post("/", controllers.CreateArtToy(p.ArtToys, logg))
			r.Put("/{id}", controllers.UpdateArtToy(p.ArtToys, logg))
			r.Delete("/{id}", controllers.DeleteArtToy(p.ArtToys, logg))
		})
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", controllers.ListOrders(p.Orders, logg))
		r.With(memberOnly).Post("/", controllers.CreateOrder(p.Orders, logg))
		r.Get("/{id}", controllers.GetOrder(p.Orders, logg))
		r.Put("/{id}", controllers.UpdateOrder(p.Orders, logg))
		r.Delete("/{id}", controllers.DeleteOrder(p.Orders, logg))
	})

	return r
}
