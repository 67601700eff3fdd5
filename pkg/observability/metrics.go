package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Page render metrics
	PageRendersTotal  *prometheus.CounterVec
	RenderErrorsTotal *prometheus.CounterVec

	// Content metrics
	ContentCacheHitsTotal   prometheus.Counter
	ContentCacheMissesTotal prometheus.Counter
	ContentReloadsTotal     *prometheus.CounterVec
	ArticlesLoaded          prometheus.Gauge

	// Sitemap metrics
	SitemapBuildsTotal prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "website_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "website_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"method", "path"},
		),

		PageRendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_page_renders_total",
				Help: "Total number of page renders",
			},
			[]string{"page"},
		),
		RenderErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_render_errors_total",
				Help: "Total number of page render errors",
			},
			[]string{"page"},
		),

		ContentCacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "website_content_cache_hits_total",
				Help: "Total number of rendered article cache hits",
			},
		),
		ContentCacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "website_content_cache_misses_total",
				Help: "Total number of rendered article cache misses",
			},
		),
		ContentReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_content_reloads_total",
				Help: "Total number of content store reloads",
			},
			[]string{"status"},
		),
		ArticlesLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "website_articles_loaded",
				Help: "Number of published articles currently loaded",
			},
		),

		SitemapBuildsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "website_sitemap_builds_total",
				Help: "Total number of sitemap builds",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSize,
		m.PageRendersTotal,
		m.RenderErrorsTotal,
		m.ContentCacheHitsTotal,
		m.ContentCacheMissesTotal,
		m.ContentReloadsTotal,
		m.ArticlesLoaded,
		m.SitemapBuildsTotal,
	)

	return m
}

// responseWriter wraps http.ResponseWriter to capture status code and size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// HTTPMetricsMiddleware instruments HTTP requests with Prometheus metrics
func HTTPMetricsMiddleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rw.statusCode)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
			metrics.HTTPResponseSize.WithLabelValues(r.Method, r.URL.Path).Observe(float64(rw.bytesWritten))
		})
	}
}
