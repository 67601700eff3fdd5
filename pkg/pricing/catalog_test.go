package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCTAEnabledFollowsAvailability(t *testing.T) {
	ga := Plan{Availability: AvailabilityGA}
	soon := Plan{Availability: AvailabilityComingSoon}

	assert.True(t, ga.CTAEnabled())
	assert.False(t, soon.CTAEnabled())
}

func TestCatalogPreservesOrder(t *testing.T) {
	catalog := NewCatalog(
		Plan{Name: "C"},
		Plan{Name: "A"},
		Plan{Name: "B"},
	)

	names := make([]string, 0, catalog.Len())
	for _, plan := range catalog.Plans() {
		names = append(names, plan.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestCatalogCopiesInputs(t *testing.T) {
	limits := []Limit{{Label: "Projects", Value: "1"}}
	plans := []Plan{{Name: "Free", Limits: limits}}

	catalog := NewCatalog(plans...)

	plans[0].Name = "Mutated"
	limits[0].Value = "999"

	got := catalog.Plans()
	assert.Equal(t, "Free", got[0].Name)
	assert.Equal(t, "1", got[0].Limits[0].Value)

	// Mutating the returned slice must not leak back either.
	got[0].Limits[0].Value = "changed"
	assert.Equal(t, "1", catalog.Plans()[0].Limits[0].Value)
}

func TestValidateAcceptsDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog("https://console.quarry.dev")
	require.NoError(t, catalog.Validate())
	assert.Equal(t, 3, catalog.Len())
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	catalog := NewCatalog(
		Plan{Name: "Free", PriceLabel: "$0", CTA: CallToAction{Label: "Go", Href: "/signup"}, Availability: AvailabilityGA},
		Plan{Name: "Free", PriceLabel: "$1", CTA: CallToAction{Label: "Go", Href: "/signup"}, Availability: AvailabilityGA},
	)

	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateRejectsLiveCTAWithPlaceholderHref(t *testing.T) {
	catalog := NewCatalog(
		Plan{Name: "Free", PriceLabel: "$0", CTA: CallToAction{Label: "Go", Href: "#"}, Availability: AvailabilityGA},
	)

	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "live call to action")
}

func TestValidateAllowsPlaceholderHrefForComingSoon(t *testing.T) {
	catalog := NewCatalog(
		Plan{Name: "Enterprise", PriceLabel: "Custom", CTA: CallToAction{Label: "Coming Soon", Href: "#"}, Availability: AvailabilityComingSoon},
	)

	require.NoError(t, catalog.Validate())
}

func TestValidateRejectsUnknownAvailability(t *testing.T) {
	catalog := NewCatalog(
		Plan{Name: "Odd", PriceLabel: "$5", CTA: CallToAction{Label: "Go", Href: "/x"}, Availability: Availability("beta")},
	)

	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown availability")
}

func TestValidateRejectsUnlabeledLimit(t *testing.T) {
	catalog := NewCatalog(
		Plan{
			Name:         "Free",
			PriceLabel:   "$0",
			CTA:          CallToAction{Label: "Go", Href: "/signup"},
			Availability: AvailabilityGA,
			Limits:       []Limit{{Label: "  ", Value: "20K"}},
		},
	)

	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit 0")
}

func TestDefaultCatalogSignupTargets(t *testing.T) {
	catalog := DefaultCatalog("https://console.quarry.dev/")

	plans := catalog.Plans()
	assert.Equal(t, "https://console.quarry.dev/signup?plan=free", plans[0].CTA.Href)
	assert.Equal(t, "https://console.quarry.dev/signup?plan=pro", plans[1].CTA.Href)
	assert.Equal(t, "#", plans[2].CTA.Href)
	assert.True(t, plans[1].Highlighted)
}
