// Package site owns the marketing pages and the pieces they share: the
// base layout with navigation, the button primitive, the home and pricing
// pages, and the sitemap.
//
// The layout implements content.PageRenderer, so the blog handlers wrap
// their bodies in the same shell without knowing about navigation or
// branding. The button primitive is handed to the pricing renderer as its
// CTA control, keeping disabled-state rules in one place.
package site
