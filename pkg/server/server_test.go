package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/website/pkg/config"
	"github.com/quarryhq/website/pkg/content"
	"github.com/quarryhq/website/pkg/observability"
	"github.com/quarryhq/website/pkg/pricing"
	"github.com/quarryhq/website/pkg/site"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	fsys := fstest.MapFS{
		"hello-quarry.md": {Data: []byte("---\ntitle: Hello Quarry\ndate: 2026-01-05\n---\n\nWelcome.\n")},
	}
	store, err := content.NewStore(fsys, cfg.Content.CacheSize, logger, metrics)
	require.NoError(t, err)

	srv, err := New(Options{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Catalog:  pricing.DefaultCatalog(cfg.Site.ConsoleURL),
		Store:    store,
		Sitemap:  site.NewSitemap(cfg.Site.BaseURL, store, logger, metrics),
	})
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.PublicHandler()

	cases := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", "Quarry"},
		{"/pricing", "text/html; charset=utf-8", "plan-grid"},
		{"/blog", "text/html; charset=utf-8", "Hello Quarry"},
		{"/blog/hello-quarry", "text/html; charset=utf-8", "Welcome."},
		{"/api/v1/pricing", "application/json", `"plans"`},
		{"/sitemap.xml", "application/xml; charset=utf-8", "/blog/hello-quarry"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, handler, tc.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestPublicRoutesAttachRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv.PublicHandler(), "/")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv.PublicHandler(), "/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.HealthHandler()

	rec := get(t, handler, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, handler, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)

	var status observability.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, observability.StatusHealthy, status.Status)
	assert.Contains(t, status.Dependencies, "content")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate some traffic first so counters exist.
	get(t, srv.PublicHandler(), "/pricing")

	rec := get(t, srv.HealthHandler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "website_http_requests_total")
	assert.Contains(t, rec.Body.String(), "website_page_renders_total")
}

func TestInvalidCatalogRejectedAtConstruction(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	store, err := content.NewStore(fstest.MapFS{}, cfg.Content.CacheSize, logger, metrics)
	require.NoError(t, err)

	badCatalog := pricing.NewCatalog(pricing.Plan{Name: ""})
	_, err = New(Options{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Catalog:  badCatalog,
		Store:    store,
		Sitemap:  site.NewSitemap(cfg.Site.BaseURL, store, logger, metrics),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan catalog")
}
