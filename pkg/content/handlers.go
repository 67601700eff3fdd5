package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quarryhq/website/pkg/httputil"
	"github.com/quarryhq/website/pkg/observability"
)

// PageRenderer wraps a page body in the site layout. The site package
// supplies the implementation so this package never knows about the
// navigation shell.
type PageRenderer interface {
	RenderPage(title string, body template.HTML) (template.HTML, error)
}

// Handlers serves the blog pages
type Handlers struct {
	store   *Store
	pages   PageRenderer
	logger  *observability.Logger
	metrics *observability.Metrics

	listTmpl    *template.Template
	articleTmpl *template.Template
}

// NewHandlers creates blog handlers over the store
func NewHandlers(store *Store, pages PageRenderer, logger *observability.Logger, metrics *observability.Metrics) (*Handlers, error) {
	listTmpl, err := template.New("blog-list").Parse(blogListTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blog list template: %w", err)
	}
	articleTmpl, err := template.New("blog-article").Parse(blogArticleTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blog article template: %w", err)
	}

	return &Handlers{
		store:       store,
		pages:       pages,
		logger:      logger,
		metrics:     metrics,
		listTmpl:    listTmpl,
		articleTmpl: articleTmpl,
	}, nil
}

// RegisterRoutes registers blog routes on the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/blog", h.ListArticles).Methods(http.MethodGet)
	router.HandleFunc("/blog/{slug}", h.ShowArticle).Methods(http.MethodGet)
}

// ListArticles handles GET /blog
func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.listTmpl.Execute(&buf, h.store.Articles()); err != nil {
		h.renderError(w, r, "blog", err)
		return
	}

	page, err := h.pages.RenderPage("Blog", template.HTML(buf.String()))
	if err != nil {
		h.renderError(w, r, "blog", err)
		return
	}

	h.metrics.PageRendersTotal.WithLabelValues("blog").Inc()
	httputil.WriteHTML(w, http.StatusOK, []byte(page))
}

// ShowArticle handles GET /blog/{slug}
func (h *Handlers) ShowArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.store.Get(slug)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderError(w, r, "article", err)
		return
	}

	body, err := h.store.RenderedHTML(slug)
	if err != nil {
		h.renderError(w, r, "article", err)
		return
	}

	var buf bytes.Buffer
	data := struct {
		Article Article
		Body    template.HTML
	}{Article: article, Body: body}
	if err := h.articleTmpl.Execute(&buf, data); err != nil {
		h.renderError(w, r, "article", err)
		return
	}

	page, err := h.pages.RenderPage(article.Title, template.HTML(buf.String()))
	if err != nil {
		h.renderError(w, r, "article", err)
		return
	}

	h.metrics.PageRendersTotal.WithLabelValues("article").Inc()
	httputil.WriteHTML(w, http.StatusOK, []byte(page))
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, page string, err error) {
	h.metrics.RenderErrorsTotal.WithLabelValues(page).Inc()
	observability.FromContext(r.Context()).WithError(err).Error("Failed to render page")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

const blogListTemplate = `<section class="blog-list">
  <h1>Blog</h1>
{{- if not .}}
  <p class="blog-empty">No posts yet.</p>
{{- end}}
{{- range .}}
  <article class="blog-entry">
    <h2><a href="/blog/{{.Slug}}">{{.Title}}</a></h2>
    <p class="blog-meta">{{.Date.Format "January 2, 2006"}}{{if .Author}} - {{.Author}}{{end}}</p>
    {{- if .Summary}}
    <p class="blog-summary">{{.Summary}}</p>
    {{- end}}
  </article>
{{- end}}
</section>`

const blogArticleTemplate = `<article class="blog-article">
  <h1>{{.Article.Title}}</h1>
  <p class="blog-meta">{{.Article.Date.Format "January 2, 2006"}}{{if .Article.Author}} - {{.Article.Author}}{{end}}</p>
  <div class="blog-body">
{{.Body}}
  </div>
</article>`
