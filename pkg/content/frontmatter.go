package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatter indicates the document did not start with a YAML fence
	ErrMissingFrontMatter = errors.New("content: missing frontmatter")
	// ErrMalformedFrontMatter indicates the YAML block could not be parsed
	ErrMalformedFrontMatter = errors.New("content: malformed frontmatter")
)

// dateLayout is the authoring format for article dates
const dateLayout = "2006-01-02"

// frontMatter is the YAML shape authors write at the top of each article
type frontMatter struct {
	Title   string   `yaml:"title"`
	Author  string   `yaml:"author"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Date    string   `yaml:"date"`
	Slug    string   `yaml:"slug"`
	Draft   bool     `yaml:"draft"`
}

// ParseArticle parses a markdown document that starts with `---` YAML
// fences. The filename (without extension) becomes the slug unless the
// frontmatter overrides it.
func ParseArticle(filename string, data []byte) (Article, error) {
	if len(data) == 0 {
		return Article{}, ErrMissingFrontMatter
	}

	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return Article{}, ErrMissingFrontMatter
	}

	parts := bytes.SplitN(normalized[4:], []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return Article{}, ErrMalformedFrontMatter
	}

	var fm frontMatter
	if err := yaml.Unmarshal(parts[0], &fm); err != nil {
		return Article{}, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}

	if strings.TrimSpace(fm.Title) == "" {
		return Article{}, fmt.Errorf("%w: title is required", ErrMalformedFrontMatter)
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(fm.Date))
	if err != nil {
		return Article{}, fmt.Errorf("%w: invalid date %q", ErrMalformedFrontMatter, fm.Date)
	}

	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = slugFromFilename(filename)
	}
	if slug == "" {
		return Article{}, fmt.Errorf("%w: cannot derive slug from %q", ErrMalformedFrontMatter, filename)
	}

	return Article{
		Slug:    slug,
		Title:   fm.Title,
		Author:  fm.Author,
		Summary: fm.Summary,
		Tags:    fm.Tags,
		Date:    date,
		Draft:   fm.Draft,
		Body:    string(bytes.TrimLeft(parts[1], "\n")),
	}, nil
}

// slugFromFilename strips directories and the .md extension
func slugFromFilename(filename string) string {
	base := filename
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimSuffix(base, ".md")
	return strings.ToLower(strings.TrimSpace(base))
}
