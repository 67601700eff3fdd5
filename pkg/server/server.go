package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/quarryhq/website/pkg/config"
	"github.com/quarryhq/website/pkg/content"
	"github.com/quarryhq/website/pkg/httputil"
	"github.com/quarryhq/website/pkg/observability"
	"github.com/quarryhq/website/pkg/pricing"
	"github.com/quarryhq/website/pkg/site"
)

// Options carries the assembled dependencies for the server
type Options struct {
	Config   *config.Config
	Logger   *observability.Logger
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
	Catalog  pricing.Catalog
	Store    *content.Store
	Sitemap  *site.Sitemap
}

// Server runs the public and health HTTP servers
type Server struct {
	cfg    *config.Config
	logger *observability.Logger

	public *http.Server
	health *http.Server
}

// New validates the catalog and builds both servers
func New(opts Options) (*Server, error) {
	if err := opts.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan catalog: %w", err)
	}

	layout, err := site.NewLayout(opts.Config.Site.Title, opts.Config.Site.ConsoleURL)
	if err != nil {
		return nil, err
	}

	pageHandlers, err := site.NewHandlers(layout, opts.Catalog, opts.Logger, opts.Metrics)
	if err != nil {
		return nil, err
	}
	blogHandlers, err := content.NewHandlers(opts.Store, layout, opts.Logger, opts.Metrics)
	if err != nil {
		return nil, err
	}
	pricingHandlers := pricing.NewHandlers(opts.Catalog, opts.Logger)

	router := mux.NewRouter()
	pageHandlers.RegisterRoutes(router)
	blogHandlers.RegisterRoutes(router)
	pricingHandlers.RegisterRoutes(router)
	opts.Sitemap.RegisterRoutes(router)

	chain := httputil.Chain(
		httputil.RequestIDMiddleware(opts.Logger),
		httputil.RecoveryMiddleware(opts.Logger),
		httputil.LoggingMiddleware(opts.Logger),
		observability.HTTPMetricsMiddleware(opts.Metrics),
	)

	public := &http.Server{
		Addr:         net.JoinHostPort(opts.Config.Server.Host, opts.Config.Server.Port),
		Handler:      chain(router),
		ReadTimeout:  opts.Config.Server.ReadTimeout,
		WriteTimeout: opts.Config.Server.WriteTimeout,
		IdleTimeout:  opts.Config.Server.IdleTimeout,
	}

	health := &http.Server{
		Addr:         net.JoinHostPort(opts.Config.Server.Host, opts.Config.Server.HealthPort),
		Handler:      newHealthMux(opts),
		ReadTimeout:  opts.Config.Server.ReadTimeout,
		WriteTimeout: opts.Config.Server.WriteTimeout,
	}

	return &Server{
		cfg:    opts.Config,
		logger: opts.Logger,
		public: public,
		health: health,
	}, nil
}

// newHealthMux builds the probe and metrics router
func newHealthMux(opts Options) http.Handler {
	checker := observability.NewHealthChecker()
	checker.AddCheck("content", func(ctx context.Context) observability.DependencyStatus {
		start := time.Now()
		status := observability.DependencyStatus{
			Status:    observability.StatusHealthy,
			Timestamp: time.Now(),
			Latency:   time.Since(start),
		}
		if err := opts.Store.HealthCheck(ctx); err != nil {
			status.Status = observability.StatusUnhealthy
			status.Message = err.Error()
		}
		return status
	})

	healthMux := mux.NewRouter()
	healthMux.HandleFunc("/healthz", checker.Liveness).Methods(http.MethodGet)
	healthMux.HandleFunc("/readyz", checker.Readiness).Methods(http.MethodGet)
	if opts.Config.Observability.MetricsEnabled {
		healthMux.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}
	return healthMux
}

// Servers exposes the underlying HTTP servers for graceful shutdown
func (s *Server) Servers() (public, health *http.Server) {
	return s.public, s.health
}

// PublicHandler exposes the public router, mainly for tests
func (s *Server) PublicHandler() http.Handler {
	return s.public.Handler
}

// HealthHandler exposes the probe router, mainly for tests
func (s *Server) HealthHandler() http.Handler {
	return s.health.Handler
}

// Run starts both listeners and blocks until one of them fails.
// http.ErrServerClosed from a graceful shutdown is not an error.
func (s *Server) Run() error {
	var group errgroup.Group

	group.Go(func() error {
		s.logger.Infof("Public server listening on %s", s.public.Addr)
		if err := s.public.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("public server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		s.logger.Infof("Health server listening on %s", s.health.Addr)
		if err := s.health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})

	return group.Wait()
}
