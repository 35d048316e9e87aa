package payment

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/payment-service/internal/config"
	"github.com/magabrotheeeer/payment-service/internal/featureflag"
	"github.com/magabrotheeeer/payment-service/internal/http/handlers/charge"
	"github.com/magabrotheeeer/payment-service/internal/http/handlers/flags"
	"github.com/magabrotheeeer/payment-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/payment-service/internal/http/handlers/quote"
	"github.com/magabrotheeeer/payment-service/internal/http/middlewarectx"
)

// Deps зависимости HTTP-слоя.
type Deps struct {
	Charge     charge.Service
	Quote      quote.Service
	Flags      flags.Reader
	FlagWriter featureflag.Writer // nil для источника только для чтения
	Admin      middlewarectx.TokenParser
	Ready      health.Pinger
	Gatherer   prometheus.Gatherer
	RateLimit  config.RateLimit
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middlewarectx.Propagation,
	)

	healthHandler := health.New(logger, deps.Ready)
	r.Get("/-/live", healthHandler.Live)
	r.Get("/-/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimit(logger, deps.RateLimit.RPS, deps.RateLimit.Burst))

		r.Post("/getquote", quote.New(logger, deps.Quote).ServeHTTP)

		r.Route("/api/v1", func(r chi.Router) {
			r.Method(http.MethodPost, "/charge", charge.New(logger, deps.Charge))

			flagsHandler := flags.New(logger, deps.Flags, deps.FlagWriter)
			r.Get("/flags/{name}", flagsHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnly(deps.Admin, logger))
				r.Put("/flags/{name}", flagsHandler.Put)
				r.Delete("/flags/{name}", flagsHandler.Delete)
			})
		})
	})
}
