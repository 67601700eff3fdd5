// Package pricing holds the plan catalog and renders it as the pricing grid.
//
// # Overview
//
// The catalog is static display configuration: an ordered list of plan tiers
// with opaque price and quota strings. Nothing here computes prices or
// interprets quotas - values like "20K" and "Unlimited" are text all the way
// through, so display formatting stays decoupled from any future billing
// logic.
//
// # Plan Availability
//
// A plan's lifecycle state is a tagged discriminant, not a boolean:
//
//	pricing.AvailabilityGA         // selectable today
//	pricing.AvailabilityComingSoon // announced, CTA disabled
//
// The CTA's interactive state is derived from availability via
// Plan.CTAEnabled, so a coming-soon tier can never accidentally ship with a
// live signup link.
//
// # Rendering
//
// Rendering is pure: the same catalog always produces the same HTML.
//
//	card := pricing.NewCardRenderer(site.CTAButton)
//	grid := pricing.NewGridRenderer(card)
//	html, err := grid.Render(catalog)
//
// Cards appear in exactly the catalog's declared order; limit rows appear in
// exactly the plan's declared order. The grid renderer never sorts, filters,
// or paginates.
package pricing
