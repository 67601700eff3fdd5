// Package observability provides logging, metrics, health checks, and
// graceful shutdown for the website server.
//
// # Logging
//
// Structured JSON logging via stdlib slog:
//
//	logger := observability.NewLogger(observability.InfoLevel, os.Stdout)
//	logger.WithField("slug", slug).Info("article rendered")
//
// # Metrics
//
// Prometheus metrics for HTTP traffic, page renders, and the content cache:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	handler := observability.HTTPMetricsMiddleware(metrics)(next)
//
// # Health
//
// Liveness and readiness probes for the health port:
//
//	checker := observability.NewHealthChecker()
//	checker.AddCheck("content", store.HealthCheck)
//	mux.HandleFunc("/healthz", checker.Liveness)
//	mux.HandleFunc("/readyz", checker.Readiness)
//
// # Shutdown
//
// Signal-driven graceful shutdown of the HTTP servers and background
// workers:
//
//	manager := observability.NewShutdownManager(logger, server, 30*time.Second)
//	manager.RegisterShutdownFunc(watcher.Close)
//	manager.WaitForShutdown()
package observability
