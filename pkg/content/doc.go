// Package content loads, renders, and serves the blog.
//
// Articles are markdown files with a YAML frontmatter fence:
//
//	---
//	title: Introducing Quarry
//	date: 2026-01-15
//	author: The Quarry Team
//	summary: What Quarry is and why we built it.
//	---
//
//	Body in markdown...
//
// The Store loads every .md file from an fs.FS at startup, skips drafts,
// and keeps rendered HTML in an LRU cache. When a content directory is
// configured the Watcher reloads the store on file changes, so edits show
// up without a restart.
package content
