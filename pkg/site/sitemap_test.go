package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/website/pkg/content"
	"github.com/quarryhq/website/pkg/observability"
)

func newTestSitemap(t *testing.T) (*Sitemap, *content.Store, *observability.Metrics) {
	t.Helper()
	fsys := fstest.MapFS{
		"first-post.md": {Data: []byte("---\ntitle: First Post\ndate: 2026-01-10\n---\nbody")},
	}

	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	store, err := content.NewStore(fsys, 8, logger, metrics)
	require.NoError(t, err)

	return NewSitemap("https://quarry.dev/", store, logger, metrics), store, metrics
}

func TestSitemapServesXML(t *testing.T) {
	sitemap, _, metrics := newTestSitemap(t)

	router := mux.NewRouter()
	sitemap.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<?xml")
	assert.Contains(t, body, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, body, "<loc>https://quarry.dev/</loc>")
	assert.Contains(t, body, "<loc>https://quarry.dev/pricing</loc>")
	assert.Contains(t, body, "<loc>https://quarry.dev/blog</loc>")
	assert.Contains(t, body, "<loc>https://quarry.dev/blog/first-post</loc>")
	assert.Contains(t, body, "<lastmod>2026-01-10</lastmod>")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.SitemapBuildsTotal))
}

func TestSitemapRebuildPicksUpNewArticles(t *testing.T) {
	fsys := fstest.MapFS{
		"first-post.md": {Data: []byte("---\ntitle: First Post\ndate: 2026-01-10\n---\nbody")},
	}
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	store, err := content.NewStore(fsys, 8, logger, metrics)
	require.NoError(t, err)

	sitemap := NewSitemap("https://quarry.dev", store, logger, metrics)

	serve := func() string {
		req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
		rec := httptest.NewRecorder()
		sitemap.Serve(rec, req)
		return rec.Body.String()
	}

	assert.NotContains(t, serve(), "second-post")

	fsys["second-post.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Second Post\ndate: 2026-02-10\n---\nbody")}
	require.NoError(t, store.Reload())
	sitemap.Rebuild()

	assert.Contains(t, serve(), "<loc>https://quarry.dev/blog/second-post</loc>")
}

func TestSitemapScheduleRejectsBadExpression(t *testing.T) {
	sitemap, _, _ := newTestSitemap(t)

	_, err := sitemap.ScheduleRefresh("not a cron expression")
	require.Error(t, err)
}

func TestSitemapScheduleStartsAndStops(t *testing.T) {
	sitemap, _, _ := newTestSitemap(t)

	stop, err := sitemap.ScheduleRefresh("@hourly")
	require.NoError(t, err)
	stop()
}
