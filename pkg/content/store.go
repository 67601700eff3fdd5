package content

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/quarryhq/website/pkg/observability"
)

// ErrArticleNotFound indicates no published article exists for a slug
var ErrArticleNotFound = errors.New("content: article not found")

// Store holds the published articles and a cache of rendered bodies.
// Reads are safe for concurrent use; Reload swaps the whole set atomically
// under the lock.
type Store struct {
	fsys    fs.FS
	logger  *observability.Logger
	metrics *observability.Metrics

	mu       sync.RWMutex
	articles []Article
	bySlug   map[string]Article

	rendered *lru.Cache[string, template.HTML]
}

// NewStore creates a store over the given filesystem and loads it once.
// cacheSize bounds the rendered-article LRU.
func NewStore(fsys fs.FS, cacheSize int, logger *observability.Logger, metrics *observability.Metrics) (*Store, error) {
	rendered, err := lru.New[string, template.HTML](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	s := &Store{
		fsys:     fsys,
		logger:   logger,
		metrics:  metrics,
		rendered: rendered,
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every article from the filesystem. On any parse error
// the previous article set stays in place.
func (s *Store) Reload() error {
	articles, err := loadArticles(s.fsys, s.logger)
	if err != nil {
		s.metrics.ContentReloadsTotal.WithLabelValues("error").Inc()
		return err
	}

	s.mu.Lock()
	s.articles = articles
	s.bySlug = make(map[string]Article, len(articles))
	for _, article := range articles {
		s.bySlug[article.Slug] = article
	}
	s.mu.Unlock()

	s.rendered.Purge()
	s.metrics.ContentReloadsTotal.WithLabelValues("success").Inc()
	s.metrics.ArticlesLoaded.Set(float64(len(articles)))
	s.logger.WithField("articles", len(articles)).Info("Content loaded")

	return nil
}

// Articles returns published articles, newest first
func (s *Store) Articles() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Get returns the published article for a slug
func (s *Store) Get(slug string) (Article, error) {
	s.mu.RLock()
	article, ok := s.bySlug[slug]
	s.mu.RUnlock()
	if !ok {
		return Article{}, fmt.Errorf("%w: %q", ErrArticleNotFound, slug)
	}
	return article, nil
}

// RenderedHTML returns the article body rendered to HTML, via the LRU cache
func (s *Store) RenderedHTML(slug string) (template.HTML, error) {
	if html, ok := s.rendered.Get(slug); ok {
		s.metrics.ContentCacheHitsTotal.Inc()
		return html, nil
	}
	s.metrics.ContentCacheMissesTotal.Inc()

	article, err := s.Get(slug)
	if err != nil {
		return "", err
	}

	html := RenderMarkdown(article.Body)
	s.rendered.Add(slug, html)
	return html, nil
}

// Len returns the number of published articles
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// HealthCheck reports whether the store has content loaded. The site can
// run with zero articles; only a nil store would be a wiring bug, so this
// always passes once construction succeeded.
func (s *Store) HealthCheck(ctx context.Context) error {
	return nil
}

// loadArticles walks the filesystem for .md files, skipping drafts and
// dotfiles, and returns the result sorted newest first.
func loadArticles(fsys fs.FS, logger *observability.Logger) ([]Article, error) {
	var articles []Article
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") || strings.HasPrefix(path.Base(p), ".") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		article, err := ParseArticle(p, data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}

		if article.Draft {
			logger.WithField("slug", article.Slug).Debug("Skipping draft article")
			return nil
		}
		if prev, dup := seen[article.Slug]; dup {
			return fmt.Errorf("duplicate slug %q in %s and %s", article.Slug, prev, p)
		}
		seen[article.Slug] = p

		articles = append(articles, article)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
	return articles, nil
}
