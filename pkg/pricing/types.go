package pricing

// Availability represents the lifecycle state of a plan tier
type Availability string

const (
	// AvailabilityGA marks a tier customers can sign up for today
	AvailabilityGA Availability = "ga"
	// AvailabilityComingSoon marks an announced tier that cannot be selected yet
	AvailabilityComingSoon Availability = "coming_soon"
)

// Limit is one quota attribute displayed on a plan card. The value is an
// opaque display string ("20K", "Unlimited") and is never parsed.
type Limit struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CallToAction is the single action control on a plan card
type CallToAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Plan describes one pricing tier as shown on the pricing page
type Plan struct {
	Name         string
	PriceLabel   string
	PriceUnit    string
	Description  string
	Limits       []Limit
	CTA          CallToAction
	Availability Availability
	Highlighted  bool
}

// CTAEnabled reports whether the plan's action control is interactive.
// Coming-soon tiers always render an inert control.
func (p Plan) CTAEnabled() bool {
	return p.Availability == AvailabilityGA
}
