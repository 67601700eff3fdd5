package pricing

import (
	"bytes"
	"fmt"
	"html/template"
)

// CTAButton renders a call-to-action control. The site layer supplies the
// implementation so this package stays free of button styling. A disabled
// control must render as an inert element with no navigation target.
type CTAButton func(label, href string, enabled bool) template.HTML

// CardRenderer renders a single plan to an HTML card. Rendering is pure:
// the same plan always yields the same markup.
type CardRenderer struct {
	tmpl *template.Template
}

// NewCardRenderer creates a card renderer using the given CTA control.
// The template is parsed once; Render never mutates the renderer.
func NewCardRenderer(button CTAButton) (*CardRenderer, error) {
	funcMap := template.FuncMap{
		"cta": func(p Plan) template.HTML {
			return button(p.CTA.Label, p.CTA.Href, p.CTAEnabled())
		},
	}

	tmpl, err := template.New("plan-card").Funcs(funcMap).Parse(planCardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan card template: %w", err)
	}

	return &CardRenderer{tmpl: tmpl}, nil
}

// Render renders one plan card
func (r *CardRenderer) Render(plan Plan) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, plan); err != nil {
		return "", fmt.Errorf("failed to render plan card %q: %w", plan.Name, err)
	}
	return template.HTML(buf.String()), nil
}

// GridRenderer composes plan cards into the pricing grid, preserving
// catalog order. It never sorts, filters, or paginates.
type GridRenderer struct {
	card *CardRenderer
	tmpl *template.Template
}

// NewGridRenderer creates a grid renderer over the given card renderer
func NewGridRenderer(card *CardRenderer) (*GridRenderer, error) {
	tmpl, err := template.New("plan-grid").Parse(planGridTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan grid template: %w", err)
	}
	return &GridRenderer{card: card, tmpl: tmpl}, nil
}

// Render renders the full grid for the catalog. An empty catalog renders
// an empty grid container, not an error.
func (r *GridRenderer) Render(catalog Catalog) (template.HTML, error) {
	cards := make([]template.HTML, 0, catalog.Len())
	for _, plan := range catalog.Plans() {
		card, err := r.card.Render(plan)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("failed to render plan grid: %w", err)
	}
	return template.HTML(buf.String()), nil
}

const planCardTemplate = `<div class="plan-card{{if .Highlighted}} plan-card-highlighted{{end}}">
  <h3 class="plan-name">{{.Name}}</h3>
  <div class="plan-price">
    <span class="plan-price-label">{{.PriceLabel}}</span>
    <span class="plan-price-unit">{{.PriceUnit}}</span>
  </div>
  <p class="plan-description">{{.Description}}</p>
  <ul class="plan-limits">
{{- range .Limits}}
    <li class="plan-limit"><span class="plan-limit-label">{{.Label}}</span><span class="plan-limit-value">{{.Value}}</span></li>
{{- end}}
  </ul>
  {{cta .}}
</div>`

const planGridTemplate = `<div class="plan-grid">
{{- range .}}
  {{.}}
{{- end}}
</div>`
