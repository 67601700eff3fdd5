package site

import (
	"bytes"
	"fmt"
	"html/template"
)

// Layout wraps page bodies in the site shell: head, navigation, footer.
// It satisfies content.PageRenderer.
type Layout struct {
	siteTitle  string
	consoleURL string
	tmpl       *template.Template
}

// NewLayout creates the site layout
func NewLayout(siteTitle, consoleURL string) (*Layout, error) {
	tmpl, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}
	return &Layout{
		siteTitle:  siteTitle,
		consoleURL: consoleURL,
		tmpl:       tmpl,
	}, nil
}

// RenderPage wraps a body fragment in the full page shell
func (l *Layout) RenderPage(title string, body template.HTML) (template.HTML, error) {
	data := struct {
		SiteTitle  string
		PageTitle  string
		ConsoleURL string
		Body       template.HTML
	}{
		SiteTitle:  l.siteTitle,
		PageTitle:  title,
		ConsoleURL: l.consoleURL,
		Body:       body,
	}

	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render page %q: %w", title, err)
	}
	return template.HTML(buf.String()), nil
}

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{if .PageTitle}}{{.PageTitle}} - {{end}}{{.SiteTitle}}</title>
  <link rel="stylesheet" href="/static/site.css">
</head>
<body>
  <nav class="site-nav">
    <a class="site-brand" href="/">{{.SiteTitle}}</a>
    <div class="site-links">
      <a href="/pricing">Pricing</a>
      <a href="/blog">Blog</a>
      <a class="site-console" href="{{.ConsoleURL}}">Console</a>
    </div>
  </nav>
  <main class="site-main">
{{.Body}}
  </main>
  <footer class="site-footer">
    <p>&copy; {{.SiteTitle}}</p>
  </footer>
</body>
</html>`
