package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applicanthandler "github.com/online-dot/abroad-application-platform/internal/applicant/handler"
	apphandler "github.com/online-dot/abroad-application-platform/internal/application/handler"
	"github.com/online-dot/abroad-application-platform/internal/platform/config"
	"github.com/online-dot/abroad-application-platform/internal/platform/middleware"
	"github.com/online-dot/abroad-application-platform/internal/ratelimit"
)

// NewRouter wires all public endpoints. Handlers stay in their domain
// packages; this is the only place routes, middleware order, and rate limits
// meet.
func NewRouter(
	applications *apphandler.Handler,
	profile *applicanthandler.Handler,
	validator middleware.TokenValidator,
	limiter ratelimit.Limiter,
	cfg config.Config,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))

		r.Get("/me", profile.HandleProfile)
		r.Get("/applications", applications.HandleList)
		r.Get("/applications/{number}", applications.HandleGet)

		submitLimit := middleware.LimitSubmissions(
			limiter, cfg.RateLimit.SubmitLimit, cfg.RateLimit.SubmitWindow, logger,
		)
		r.With(submitLimit).Post("/applications", applications.HandleSubmit)
	})

	return r
}
