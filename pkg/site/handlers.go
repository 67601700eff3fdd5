package site

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quarryhq/website/pkg/httputil"
	"github.com/quarryhq/website/pkg/observability"
	"github.com/quarryhq/website/pkg/pricing"
)

// Handlers serves the home and pricing pages
type Handlers struct {
	layout  *Layout
	catalog pricing.Catalog
	grid    *pricing.GridRenderer
	logger  *observability.Logger
	metrics *observability.Metrics

	homeTmpl *template.Template
}

// NewHandlers creates the page handlers. The pricing grid renderer is
// built here so the whole site shares one button primitive.
func NewHandlers(layout *Layout, catalog pricing.Catalog, logger *observability.Logger, metrics *observability.Metrics) (*Handlers, error) {
	card, err := pricing.NewCardRenderer(CTAButton)
	if err != nil {
		return nil, err
	}
	grid, err := pricing.NewGridRenderer(card)
	if err != nil {
		return nil, err
	}

	homeTmpl, err := template.New("home").Parse(homeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}

	return &Handlers{
		layout:   layout,
		catalog:  catalog,
		grid:     grid,
		logger:   logger,
		metrics:  metrics,
		homeTmpl: homeTmpl,
	}, nil
}

// RegisterRoutes registers page routes on the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Home).Methods(http.MethodGet)
	router.HandleFunc("/pricing", h.Pricing).Methods(http.MethodGet)
}

// Home handles GET /
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	data := struct {
		SignupButton template.HTML
	}{
		SignupButton: CTAButton("Start Now", signupHref(h.catalog), true),
	}
	if err := h.homeTmpl.Execute(&buf, data); err != nil {
		h.renderError(w, r, "home", err)
		return
	}

	page, err := h.layout.RenderPage("", template.HTML(buf.String()))
	if err != nil {
		h.renderError(w, r, "home", err)
		return
	}

	h.metrics.PageRendersTotal.WithLabelValues("home").Inc()
	httputil.WriteHTML(w, http.StatusOK, []byte(page))
}

// Pricing handles GET /pricing
func (h *Handlers) Pricing(w http.ResponseWriter, r *http.Request) {
	grid, err := h.grid.Render(h.catalog)
	if err != nil {
		h.renderError(w, r, "pricing", err)
		return
	}

	body := template.HTML(`<section class="pricing"><h1>Pricing</h1>` + "\n" + string(grid) + "\n</section>")
	page, err := h.layout.RenderPage("Pricing", body)
	if err != nil {
		h.renderError(w, r, "pricing", err)
		return
	}

	h.metrics.PageRendersTotal.WithLabelValues("pricing").Inc()
	httputil.WriteHTML(w, http.StatusOK, []byte(page))
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, page string, err error) {
	h.metrics.RenderErrorsTotal.WithLabelValues(page).Inc()
	observability.FromContext(r.Context()).WithError(err).Error("Failed to render page")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// signupHref picks the first live CTA target from the catalog so the home
// hero and the pricing grid always agree on where signups go.
func signupHref(catalog pricing.Catalog) string {
	for _, plan := range catalog.Plans() {
		if plan.CTAEnabled() {
			return plan.CTA.Href
		}
	}
	return "/pricing"
}

const homeTemplate = `<section class="hero">
  <h1>Query your data without running a database.</h1>
  <p class="hero-sub">Quarry is a hosted query API: load your records, query them over HTTP, and never think about servers, indexes, or upgrades.</p>
  {{.SignupButton}}
</section>
<section class="features">
  <div class="feature">
    <h2>Load and go</h2>
    <p>Push JSON or CSV records through the API and query them seconds later.</p>
  </div>
  <div class="feature">
    <h2>One endpoint</h2>
    <p>Filters, aggregations, and full-text search over a single HTTP API.</p>
  </div>
  <div class="feature">
    <h2>Priced for growth</h2>
    <p>Start free, upgrade when your query volume does.</p>
  </div>
</section>`
