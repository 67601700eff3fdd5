package pricing

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quarryhq/website/pkg/httputil"
	"github.com/quarryhq/website/pkg/observability"
)

// Handlers serves the plan catalog over the JSON API
type Handlers struct {
	catalog Catalog
	logger  *observability.Logger
}

// NewHandlers creates pricing API handlers for the given catalog
func NewHandlers(catalog Catalog, logger *observability.Logger) *Handlers {
	return &Handlers{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers pricing API routes on the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/pricing", h.ListPlans).Methods(http.MethodGet)
}

// planResponse is the API shape of a plan. The CTA's enabled state is
// computed server-side so clients never re-derive it from availability.
type planResponse struct {
	Name         string       `json:"name"`
	PriceLabel   string       `json:"price_label"`
	PriceUnit    string       `json:"price_unit"`
	Description  string       `json:"description"`
	Limits       []Limit      `json:"limits"`
	CTA          ctaResponse  `json:"cta"`
	Availability Availability `json:"availability"`
	Highlighted  bool         `json:"highlighted"`
}

type ctaResponse struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Enabled bool   `json:"enabled"`
}

// ListPlans handles GET /api/v1/pricing
func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans := h.catalog.Plans()
	resp := make([]planResponse, 0, len(plans))
	for _, plan := range plans {
		resp = append(resp, planResponse{
			Name:         plan.Name,
			PriceLabel:   plan.PriceLabel,
			PriceUnit:    plan.PriceUnit,
			Description:  plan.Description,
			Limits:       plan.Limits,
			CTA: ctaResponse{
				Label:   plan.CTA.Label,
				Href:    plan.CTA.Href,
				Enabled: plan.CTAEnabled(),
			},
			Availability: plan.Availability,
			Highlighted:  plan.Highlighted,
		})
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"plans": resp,
		"count": len(resp),
	})
}
