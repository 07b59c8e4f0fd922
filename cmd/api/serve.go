package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"representantes/docs"
	"representantes/internal/cache"
	handlers "representantes/internal/http/handler"
	"representantes/internal/http/middleware"
	"representantes/internal/otel"
	"representantes/internal/repository/sqlrepo"
	"representantes/internal/service"
	"representantes/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.dbs.Close()
	log := e.log

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, release, err := newServer(ctx, e, reg)
	if err != nil {
		return err
	}
	defer release()

	addr := e.cfg.ListenAddr()
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// newServer reloads the seed rows and assembles the HTTP application over e.
// release closes the cache and must run after the app stops serving.
func newServer(ctx context.Context, e *env, reg *prometheus.Registry) (app *fiber.App, release func(), err error) {
	log := e.log

	repCache, err := cache.New(e.cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err != nil {
			repCache.Close()
		}
	}()

	repo := sqlrepo.NewRepresentanteSQL(e.dbs, log)
	repSvc := service.NewRepresentanteService(repo, repCache, log)
	if _, err = repSvc.ReloadSeed(ctx); err != nil {
		return nil, nil, err
	}

	var fileSvc service.FileService
	if e.cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(e.cfg.MinIO)
		if err != nil {
			return nil, nil, err
		}
		fileSvc = service.NewFileService(objStore)
	} else {
		log.Info().Msg("object storage disabled")
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, nil, err
	}

	app = fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log, time.UTC))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())
	for _, h := range middleware.Response(e.cfg.HTTP) {
		app.Use(h)
	}

	handlers.RegisterRoutes(app, e.dbs.Client(), repSvc, fileSvc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, func() { repCache.Close() }, nil
}
