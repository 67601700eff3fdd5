package pricing

import (
	"fmt"
	"strings"
)

// Catalog is the ordered, immutable set of plan tiers. Order is significant:
// it determines left-to-right placement in the rendered grid and every
// consumer must preserve it.
type Catalog struct {
	plans []Plan
}

// NewCatalog builds a catalog from the given plans, in the given order.
// The input slices are copied so later mutation of the arguments cannot
// change the catalog.
func NewCatalog(plans ...Plan) Catalog {
	return Catalog{plans: clonePlans(plans)}
}

// Plans returns the plans in declared order. The returned slice is a copy.
func (c Catalog) Plans() []Plan {
	return clonePlans(c.plans)
}

// Len returns the number of plans in the catalog
func (c Catalog) Len() int {
	return len(c.plans)
}

// Validate checks the authored plan data for mistakes the type system
// cannot catch: empty or duplicate names, missing price labels, CTA
// problems. Run once at startup; the catalog never changes afterwards.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.plans))

	for i, plan := range c.plans {
		if strings.TrimSpace(plan.Name) == "" {
			return fmt.Errorf("plan %d: name is required", i)
		}
		if _, dup := seen[plan.Name]; dup {
			return fmt.Errorf("plan %q: duplicate name", plan.Name)
		}
		seen[plan.Name] = struct{}{}

		if strings.TrimSpace(plan.PriceLabel) == "" {
			return fmt.Errorf("plan %q: price label is required", plan.Name)
		}
		if strings.TrimSpace(plan.CTA.Label) == "" {
			return fmt.Errorf("plan %q: call to action label is required", plan.Name)
		}

		switch plan.Availability {
		case AvailabilityGA:
			if plan.CTA.Href == "" || plan.CTA.Href == "#" {
				return fmt.Errorf("plan %q: available plan needs a live call to action target", plan.Name)
			}
		case AvailabilityComingSoon:
			// Placeholder targets only; the control renders inert anyway.
		default:
			return fmt.Errorf("plan %q: unknown availability %q", plan.Name, plan.Availability)
		}

		for j, limit := range plan.Limits {
			if strings.TrimSpace(limit.Label) == "" {
				return fmt.Errorf("plan %q: limit %d: label is required", plan.Name, j)
			}
		}
	}

	return nil
}

// DefaultCatalog returns the production plan tiers. The console URL is
// passed in so staging and production sites point signups at their own
// console.
func DefaultCatalog(consoleURL string) Catalog {
	signup := strings.TrimRight(consoleURL, "/") + "/signup"

	return NewCatalog(
		Plan{
			Name:        "Free",
			PriceLabel:  "$0",
			PriceUnit:   "-",
			Description: "For side projects and evaluating Quarry.",
			Limits: []Limit{
				{Label: "Monthly Query Limit", Value: "20K"},
				{Label: "Max Records", Value: "200K"},
				{Label: "Projects", Value: "1"},
			},
			CTA:          CallToAction{Label: "Start Now", Href: signup + "?plan=free"},
			Availability: AvailabilityGA,
		},
		Plan{
			Name:        "Pro",
			PriceLabel:  "$29",
			PriceUnit:   "per month",
			Description: "For production workloads with room to grow.",
			Limits: []Limit{
				{Label: "Monthly Query Limit", Value: "1M"},
				{Label: "Max Records", Value: "10M"},
				{Label: "Projects", Value: "10"},
			},
			CTA:          CallToAction{Label: "Start Now", Href: signup + "?plan=pro"},
			Availability: AvailabilityGA,
			Highlighted:  true,
		},
		Plan{
			Name:        "Enterprise",
			PriceLabel:  "Custom",
			PriceUnit:   "-",
			Description: "Dedicated capacity, SSO, and custom contracts.",
			Limits: []Limit{
				{Label: "Monthly Query Limit", Value: "Unlimited"},
				{Label: "Max Records", Value: "Unlimited"},
				{Label: "Projects", Value: "Unlimited"},
			},
			CTA:          CallToAction{Label: "Coming Soon", Href: "#"},
			Availability: AvailabilityComingSoon,
		},
	)
}

// clonePlans deep-copies plans including their limit rows
func clonePlans(plans []Plan) []Plan {
	cloned := make([]Plan, len(plans))
	copy(cloned, plans)
	for i := range cloned {
		limits := make([]Limit, len(cloned[i].Limits))
		copy(limits, cloned[i].Limits)
		cloned[i].Limits = limits
	}
	return cloned
}
