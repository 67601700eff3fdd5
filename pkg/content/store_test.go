package content

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/website/pkg/observability"
)

func articleFile(title, date string, extra string) []byte {
	return []byte("---\ntitle: " + title + "\ndate: " + date + "\n" + extra + "---\n\nBody of " + title + ".\n")
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"older-post.md":  {Data: articleFile("Older Post", "2026-01-01", "")},
		"newest-post.md": {Data: articleFile("Newest Post", "2026-03-01", "")},
		"middle-post.md": {Data: articleFile("Middle Post", "2026-02-01", "")},
		"unpublished.md": {Data: articleFile("Unpublished", "2026-04-01", "draft: true\n")},
	}
}

func newTestStore(t *testing.T, fsys fstest.MapFS) (*Store, *observability.Metrics) {
	t.Helper()
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	store, err := NewStore(fsys, 8, logger, metrics)
	require.NoError(t, err)
	return store, metrics
}

func TestStoreLoadsPublishedArticlesNewestFirst(t *testing.T) {
	store, metrics := newTestStore(t, testFS())

	articles := store.Articles()
	require.Len(t, articles, 3)
	assert.Equal(t, "Newest Post", articles[0].Title)
	assert.Equal(t, "Middle Post", articles[1].Title)
	assert.Equal(t, "Older Post", articles[2].Title)

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.ArticlesLoaded))
}

func TestStoreSkipsDrafts(t *testing.T) {
	store, _ := newTestStore(t, testFS())

	_, err := store.Get("unpublished")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestStoreGet(t *testing.T) {
	store, _ := newTestStore(t, testFS())

	article, err := store.Get("older-post")
	require.NoError(t, err)
	assert.Equal(t, "Older Post", article.Title)

	_, err = store.Get("no-such-post")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestStoreRenderedHTMLCaches(t *testing.T) {
	store, metrics := newTestStore(t, testFS())

	first, err := store.RenderedHTML("older-post")
	require.NoError(t, err)
	assert.Contains(t, string(first), "Body of Older Post.")

	second, err := store.RenderedHTML("older-post")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ContentCacheHitsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ContentCacheMissesTotal))
}

func TestStoreReloadPicksUpChanges(t *testing.T) {
	fsys := testFS()
	store, _ := newTestStore(t, fsys)

	fsys["brand-new.md"] = &fstest.MapFile{Data: articleFile("Brand New", "2026-05-01", "")}
	require.NoError(t, store.Reload())

	articles := store.Articles()
	require.Len(t, articles, 4)
	assert.Equal(t, "Brand New", articles[0].Title)
}

func TestStoreReloadKeepsArticlesOnParseError(t *testing.T) {
	fsys := testFS()
	store, metrics := newTestStore(t, fsys)

	fsys["broken.md"] = &fstest.MapFile{Data: []byte("no frontmatter here")}
	err := store.Reload()
	require.Error(t, err)

	// The previous article set must survive a failed reload.
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ContentReloadsTotal.WithLabelValues("error")))
}

func TestStoreRejectsDuplicateSlugs(t *testing.T) {
	fsys := testFS()
	fsys["nested/older-post.md"] = &fstest.MapFile{Data: articleFile("Duplicate", "2026-06-01", "")}

	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	_, err := NewStore(fsys, 8, logger, metrics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}
