// Command strcheckd serves the string checks over HTTP.
//
// Configuration comes from the environment (or a .env file):
//
//	APP_ENV                development | staging | production
//	APP_NAME               service name in logs
//	LOG_LEVEL              debug | info | warn | error, overrides the APP_ENV default
//	HTTP_ADDR              listen address, default :8080
//	HTTP_READ_TIMEOUT      default 5s
//	HTTP_WRITE_TIMEOUT     default 10s
//	HTTP_SHUTDOWN_TIMEOUT  default 5s
//	DEFAULT_LANG           fallback message language, default en
//	MAX_BATCH_ITEMS        batch size limit, default 100
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/strcheck/pkg/checkapi"
	"github.com/dmitrymomot/strcheck/pkg/config"
	"github.com/dmitrymomot/strcheck/pkg/httpserver"
	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/messages"
	"github.com/dmitrymomot/strcheck/pkg/requestid"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("strcheckd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestid.LogExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)))
	}
	return logger.New(opts...)
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	catalog, err := messages.New(messages.WithDefaultLanguage(cfg.DefaultLang))
	if err != nil {
		return err
	}

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithReadTimeout(cfg.ReadTimeout),
		httpserver.WithWriteTimeout(cfg.WriteTimeout),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, newRouter(catalog, cfg, log, srv.CheckReady))
}

// newRouter mounts the API. /health answers while the process is up; /ready
// answers 503 until ready passes, which for the server means bound and not draining.
func newRouter(catalog *messages.Catalog, cfg appConfig, log *slog.Logger, ready func(context.Context) error) http.Handler {
	api := checkapi.New(catalog,
		checkapi.WithLogger(log),
		checkapi.WithMaxBatchItems(cfg.MaxBatchItems),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthHandler(log))
	r.Get("/ready", httpserver.HealthHandler(log, ready))
	r.Mount("/v1", api.Router())
	return r
}
