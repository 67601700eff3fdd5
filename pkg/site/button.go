package site

import (
	"fmt"
	"html/template"
)

// ButtonVariant selects the visual weight of a button
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

// Button is the shared action control. A disabled button renders as an
// inert span with no target: there is no anchor to follow, so it cannot
// navigate no matter how it is styled or clicked.
type Button struct {
	Label   string
	Href    string
	Variant ButtonVariant
	Enabled bool
}

// HTML renders the button
func (b Button) HTML() template.HTML {
	variant := b.Variant
	if variant == "" {
		variant = ButtonPrimary
	}

	label := template.HTMLEscapeString(b.Label)
	if !b.Enabled {
		return template.HTML(fmt.Sprintf(
			`<span class="btn btn-%s btn-disabled" aria-disabled="true">%s</span>`,
			variant, label))
	}

	return template.HTML(fmt.Sprintf(
		`<a class="btn btn-%s" href="%s">%s</a>`,
		variant, template.HTMLEscapeString(b.Href), label))
}

// CTAButton adapts Button to the pricing renderer's control contract
func CTAButton(label, href string, enabled bool) template.HTML {
	return Button{
		Label:   label,
		Href:    href,
		Variant: ButtonPrimary,
		Enabled: enabled,
	}.HTML()
}
