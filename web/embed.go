// Package web carries the default site content compiled into the binary.
// Deployments that mount a content directory bypass it entirely.
package web

import (
	"embed"
	"io/fs"
)

//go:embed content
var contentFS embed.FS

// Content returns the embedded article filesystem rooted at the
// content directory.
func Content() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		// The directory is embedded at build time; a failure here means
		// the binary itself is broken.
		panic(err)
	}
	return sub
}
