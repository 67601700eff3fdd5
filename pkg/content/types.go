package content

import "time"

// Article is one blog post: parsed frontmatter plus the raw markdown body.
// Rendered HTML is not stored here; the Store caches it separately.
type Article struct {
	// Slug is the URL path segment, e.g. "introducing-quarry"
	Slug string `json:"slug"`

	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Summary string    `json:"summary"`
	Tags    []string  `json:"tags,omitempty"`
	Date    time.Time `json:"date"`

	// Draft articles are skipped at load time and never served
	Draft bool `json:"-"`

	// Body is the markdown source below the frontmatter fence
	Body string `json:"-"`
}
