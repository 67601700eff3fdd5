package main

import (
	"context"
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quarryhq/website/pkg/config"
	"github.com/quarryhq/website/pkg/content"
	"github.com/quarryhq/website/pkg/observability"
	"github.com/quarryhq/website/pkg/pricing"
	"github.com/quarryhq/website/pkg/server"
	"github.com/quarryhq/website/pkg/site"
	"github.com/quarryhq/website/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		observability.NewLogger(observability.ErrorLevel, os.Stderr).
			WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.WithFields(map[string]interface{}{
		"port":        cfg.Server.Port,
		"health_port": cfg.Server.HealthPort,
	}).Info("Starting website")

	ctx := context.Background()

	otelProviders, err := observability.InitOTel(ctx, observability.OTelConfig{
		Enabled:        cfg.Observability.OTelEnabled,
		Endpoint:       cfg.Observability.OTelEndpoint,
		ServiceName:    cfg.Observability.OTelServiceName,
		ServiceVersion: cfg.Observability.OTelServiceVersion,
		Insecure:       cfg.Observability.OTelInsecure,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize OpenTelemetry")
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	// Embedded content by default; a mounted directory overrides it and
	// can be watched for edits.
	var contentFS fs.FS = web.Content()
	if cfg.Content.Dir != "" {
		contentFS = os.DirFS(cfg.Content.Dir)
		logger.WithField("dir", cfg.Content.Dir).Info("Using content directory")
	}

	store, err := content.NewStore(contentFS, cfg.Content.CacheSize, logger, metrics)
	if err != nil {
		logger.WithError(err).Error("Failed to load content")
		os.Exit(1)
	}

	sitemap := site.NewSitemap(cfg.Site.BaseURL, store, logger, metrics)

	srv, err := server.New(server.Options{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Catalog:  pricing.DefaultCatalog(cfg.Site.ConsoleURL),
		Store:    store,
		Sitemap:  sitemap,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to build server")
		os.Exit(1)
	}

	public, health := srv.Servers()
	shutdown := observability.NewShutdownManager(logger, cfg.Server.ShutdownTimeout, public, health)

	if cfg.Content.Watch {
		watcher, err := content.NewWatcher(store, cfg.Content.Dir)
		if err != nil {
			logger.WithError(err).Error("Failed to start content watcher")
			os.Exit(1)
		}
		watcher.Start()
		shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}

	stopSitemap, err := sitemap.ScheduleRefresh(cfg.Content.SitemapSchedule)
	if err != nil {
		logger.WithError(err).Error("Failed to schedule sitemap refresh")
		os.Exit(1)
	}
	shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
		stopSitemap()
		return nil
	})

	if otelProviders != nil {
		shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
			return observability.ShutdownOTel(ctx, otelProviders, logger)
		})
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	done := make(chan error, 1)
	go func() {
		done <- shutdown.WaitForShutdown()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("Server failed")
			os.Exit(1)
		}
	case err := <-done:
		if err != nil {
			logger.WithError(err).Error("Shutdown finished with errors")
			os.Exit(1)
		}
	}
}
