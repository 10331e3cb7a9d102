package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hurricanehousing/hhh-backend/api/controllers"
	"github.com/hurricanehousing/hhh-backend/api/middleware"
	"github.com/hurricanehousing/hhh-backend/internal/houses"
	"github.com/hurricanehousing/hhh-backend/internal/members"
	"github.com/hurricanehousing/hhh-backend/internal/pairings"
	"github.com/hurricanehousing/hhh-backend/pkg/config"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
	"github.com/hurricanehousing/hhh-backend/pkg/metrics"
)

// Dependencies carries everything the router wires into handlers.
// RateLimiter and Redis are nil when Redis is not configured.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	RateLimiter middleware.RateLimitStore
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Members  members.Service
	Houses   houses.Service
	Pairings pairings.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(deps.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
		}))
	})

	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.RateLimiter, logg)).Post("/add-member", controllers.AddMember(deps.Members, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateLimiter, logg)).Post("/login", controllers.Login(deps.Members, logg))
		r.Post("/toggle-displaced", controllers.ToggleDisplaced(deps.Members, logg))
		r.Get("/user-by-email/{email}", controllers.UserByEmail(deps.Members, logg))
		r.Post("/update-member", controllers.UpdateMember(deps.Members, logg))
		r.Post("/delete-member", controllers.DeleteMember(deps.Members, logg))

		r.Post("/current-address", controllers.CurrentAddress(deps.Houses, logg))
		r.Get("/available-houses", controllers.AvailableHouses(deps.Houses, logg))

		r.Post("/select-house", controllers.SelectHouse(deps.Pairings, logg))
		r.Get("/shelter-pairings", controllers.ShelterPairings(deps.Pairings, logg))
	})

	return r
}
