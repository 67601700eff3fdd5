package web

import (
	"io/fs"
	"testing"

	"github.com/quarryhq/website/pkg/content"
)

func TestEmbeddedArticlesParse(t *testing.T) {
	fsys := Content()

	entries, err := fs.Glob(fsys, "*.md")
	if err != nil {
		t.Fatalf("Failed to glob embedded content: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("Expected embedded articles")
	}

	for _, name := range entries {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		article, err := content.ParseArticle(name, data)
		if err != nil {
			t.Errorf("Embedded article %s does not parse: %v", name, err)
			continue
		}
		if article.Draft {
			t.Errorf("Embedded article %s must not be a draft", name)
		}
	}
}
