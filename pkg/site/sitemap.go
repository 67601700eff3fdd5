package site

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"

	"github.com/quarryhq/website/pkg/content"
	"github.com/quarryhq/website/pkg/httputil"
	"github.com/quarryhq/website/pkg/observability"
)

// staticPaths are the fixed pages always present in the sitemap
var staticPaths = []string{"/", "/pricing", "/blog"}

// Sitemap builds and serves /sitemap.xml. The rendered document is cached
// and rebuilt on a cron schedule, so article edits show up within one tick
// without rebuilding on every crawl.
type Sitemap struct {
	baseURL string
	store   *content.Store
	logger  *observability.Logger
	metrics *observability.Metrics

	cached atomic.Pointer[[]byte]
}

// NewSitemap creates a sitemap over the article store and builds it once
func NewSitemap(baseURL string, store *content.Store, logger *observability.Logger, metrics *observability.Metrics) *Sitemap {
	s := &Sitemap{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
	s.Rebuild()
	return s
}

// sitemapURL is one <url> entry
type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapIndex is the <urlset> document
type sitemapIndex struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Rebuild regenerates the cached document from the current article set
func (s *Sitemap) Rebuild() {
	index := sitemapIndex{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, path := range staticPaths {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + path})
	}
	for _, article := range s.store.Articles() {
		index.URLs = append(index.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/blog/%s", s.baseURL, article.Slug),
			LastMod: article.Date.Format("2006-01-02"),
		})
	}

	body, err := xml.MarshalIndent(index, "", "  ")
	if err != nil {
		// Marshaling fixed structs cannot fail in practice; keep serving
		// the previous document if it somehow does.
		s.logger.WithError(err).Error("Failed to build sitemap")
		return
	}

	document := append([]byte(xml.Header), body...)
	s.cached.Store(&document)
	s.metrics.SitemapBuildsTotal.Inc()
	s.logger.WithField("urls", len(index.URLs)).Debug("Sitemap rebuilt")
}

// ScheduleRefresh rebuilds the sitemap on the given cron schedule.
// The returned stop function halts the scheduler.
func (s *Sitemap) ScheduleRefresh(schedule string) (func(), error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.Rebuild); err != nil {
		return nil, fmt.Errorf("invalid sitemap schedule %q: %w", schedule, err)
	}
	c.Start()

	return func() {
		ctx := c.Stop()
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
	}, nil
}

// RegisterRoutes registers the sitemap route on the router
func (s *Sitemap) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sitemap.xml", s.Serve).Methods(http.MethodGet)
}

// Serve handles GET /sitemap.xml
func (s *Sitemap) Serve(w http.ResponseWriter, r *http.Request) {
	document := s.cached.Load()
	if document == nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	httputil.WriteXML(w, http.StatusOK, *document)
}
