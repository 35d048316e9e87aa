// Package payment собирает платёжный сервис: источник фич-флагов, метрики,
// запись транзакций, сервисы списания и расчёта доставки, HTTP-сервер.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/open-feature/go-sdk/openfeature"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/payment-service/internal/cache"
	"github.com/magabrotheeeer/payment-service/internal/config"
	"github.com/magabrotheeeer/payment-service/internal/featureflag"
	"github.com/magabrotheeeer/payment-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/payment-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payment-service/internal/lib/jwt"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
	"github.com/magabrotheeeer/payment-service/internal/metrics"
	"github.com/magabrotheeeer/payment-service/internal/rabbitmq"
	"github.com/magabrotheeeer/payment-service/internal/recorder"
	"github.com/magabrotheeeer/payment-service/internal/services/charge"
	"github.com/magabrotheeeer/payment-service/internal/services/quote"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server   *http.Server
	logger   *slog.Logger
	cache    *cache.Cache
	recorder *recorder.Recorder
	rabbit   *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.payment.New"

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	app := &App{logger: logger}

	var (
		provider openfeature.FeatureProvider
		writer   featureflag.Writer
		pinger   health.Pinger
	)
	switch cfg.FeatureFlags.Provider {
	case config.FlagProviderStatic:
		provider = featureflag.NewStaticProvider(cfg.FeatureFlags.Static)
	default:
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		redisProvider, err := featureflag.NewRedisProvider(ctx, cacheRedis, cfg.FeatureFlags.KeyPrefix)
		if err != nil {
			_ = cacheRedis.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.cache = cacheRedis
		provider = redisProvider
		writer = redisProvider
		pinger = cacheRedis
	}

	flagClient, err := featureflag.NewClient(cfg.FeatureFlags.Domain, provider, m, logger)
	if err != nil {
		if app.cache != nil {
			_ = app.cache.Close()
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("feature flag provider initialized",
		slog.String("provider", cfg.FeatureFlags.Provider),
		slog.String("domain", cfg.FeatureFlags.Domain),
	)

	policy := charge.NewPolicy(cfg.Payment.AcceptedNetworks)
	if !policy.IsDefault() {
		logger.Warn("accepted card networks differ from default", slog.Any("networks", policy.Networks()))
	}

	var tokens middlewarectx.TokenParser
	if cfg.Admin.JWTSecret != "" {
		tokens = jwt.NewJWTMaker(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	} else {
		logger.Warn("admin jwt secret is not set, flag changes are disabled")
	}

	app.recorder = recorder.New(logger, cfg.Recorder)
	if cfg.RabbitMQ.Enabled {
		app.rabbit = connectPublisher(logger, cfg.RabbitMQ, app.recorder)
	}

	chargeService := charge.New(charge.Deps{
		Flags:    flagClient,
		Recorder: app.recorder,
		Metrics:  m,
		Policy:   policy,
	}, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Charge:     chargeService,
		Quote:      quote.New(nil),
		Flags:      flagClient,
		FlagWriter: writer,
		Admin:      tokens,
		Ready:      pinger,
		Gatherer:   registry,
		RateLimit:  cfg.RateLimit,
	})

	app.server = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return app, nil
}

// connectPublisher подключает публикацию транзакций в RabbitMQ. Сбой подключения
// не мешает запуску: сервис работает без этого получателя.
func connectPublisher(logger *slog.Logger, cfg config.RabbitMQ, rec *recorder.Recorder) *amqp.Connection {
	conn, err := rabbitmq.Connect(cfg.URL, cfg.MaxRetries, cfg.RetryDelay)
	if err != nil {
		logger.Warn("rabbitmq unavailable, transaction events disabled", sl.Err(err))
		return nil
	}

	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, []rabbitmq.QueueConfig{
		{QueueName: cfg.Queue, RoutingKey: cfg.RoutingKey},
	})
	if err != nil {
		logger.Warn("failed to set up rabbitmq channel, transaction events disabled", sl.Err(err))
		_ = conn.Close()
		return nil
	}

	publisher := rabbitmq.NewTransactionPublisher(ch, cfg.Exchange, cfg.RoutingKey, nil)
	if err := rec.AddSink("rabbitmq", publisher.Publish); err != nil {
		logger.Warn("failed to register rabbitmq sink", sl.Err(err))
		_ = conn.Close()
		return nil
	}

	logger.Info("transaction events enabled", slog.String("exchange", cfg.Exchange))
	return conn
}

// Handler возвращает корневой HTTP-обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.Close()
		return err
	}
}

// Close дожидается доставки записанных транзакций и закрывает соединения.
func (a *App) Close() {
	if err := a.recorder.Close(); err != nil {
		a.logger.Warn("failed to close recorder", sl.Err(err))
	}
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", sl.Err(err))
		}
	}
}
