package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fittrack/fittrack-go/internal/crypto"
	"github.com/fittrack/fittrack-go/internal/middleware"
	"github.com/fittrack/fittrack-go/internal/observability"
	"github.com/fittrack/fittrack-go/internal/service"
)

// Services bundles the domain services the router dispatches to.
type Services struct {
	Auth     *service.AuthService
	Profile  *service.ProfileService
	Stats    *service.StatsService
	Workouts *service.WorkoutService
}

// NewRouter wires every route. Everything except registration, login, token refresh and
// the operational endpoints requires a bearer access token.
func NewRouter(tokens *crypto.TokenIssuer, svcs Services, db Pinger) http.Handler {
	authHandler := NewAuthHandler(svcs.Auth)
	profileHandler := NewProfileHandler(svcs.Profile)
	statsHandler := NewStatsHandler(svcs.Stats)
	workoutHandler := NewWorkoutHandler(svcs.Workouts)
	healthHandler := NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(observability.Instrument)

	r.Get("/health", healthHandler.HandleHealth)
	r.Get("/ready", healthHandler.HandleReady)
	r.Method(http.MethodGet, "/metrics", observability.Handler())

	r.Post("/register/", authHandler.HandleRegister)
	r.Post("/login/", authHandler.HandleLogin)
	r.Post("/token/refresh/", authHandler.HandleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))

		r.Get("/profile/", profileHandler.HandleGet)
		r.Put("/profile/", profileHandler.HandleUpdate)

		r.Get("/health-stats/", statsHandler.HandleGet)
		r.Put("/health-stats/", statsHandler.HandleUpdate)

		r.Get("/workouts/", workoutHandler.HandleList)
		r.Post("/workouts/", workoutHandler.HandleCreate)
		r.Get("/workouts/{id}/", workoutHandler.HandleGet)
		r.Put("/workouts/{id}/", workoutHandler.HandleUpdate)
		r.Delete("/workouts/{id}/", workoutHandler.HandleDelete)
	})

	return r
}
