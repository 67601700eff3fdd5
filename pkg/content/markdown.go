package content

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// RenderMarkdown converts article markdown to HTML. It is pure and
// escape-first: every line is HTML-escaped before any markup is applied,
// so raw HTML in article bodies never reaches the page.
//
// Supported markup: ATX headings, fenced code blocks, unordered lists,
// paragraphs, and inline code, bold, and links. That covers everything the
// blog actually uses; anything else passes through as escaped text.
func RenderMarkdown(markdown string) template.HTML {
	var (
		out       []string
		paragraph []string
		list      []string
		codeBlock []string
		inCode    bool
		codeLang  string
	)

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		out = append(out, "<p>"+renderInline(strings.Join(paragraph, "\n"))+"</p>")
		paragraph = nil
	}
	flushList := func() {
		if len(list) == 0 {
			return
		}
		out = append(out, "<ul>\n"+strings.Join(list, "\n")+"\n</ul>")
		list = nil
	}

	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCode {
				attrs := ""
				if codeLang != "" {
					attrs = fmt.Sprintf(` class="language-%s"`, html.EscapeString(codeLang))
				}
				out = append(out, "<pre><code"+attrs+">"+strings.Join(codeBlock, "\n")+"</code></pre>")
				codeBlock = nil
				inCode = false
				continue
			}
			flushParagraph()
			flushList()
			inCode = true
			codeLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			continue
		}

		if inCode {
			codeBlock = append(codeBlock, html.EscapeString(line))
			continue
		}

		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushParagraph()
			flushList()
			continue
		}

		if level, text, ok := parseHeading(trimmed); ok {
			flushParagraph()
			flushList()
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(text), level))
			continue
		}

		if item, ok := parseListItem(trimmed); ok {
			flushParagraph()
			list = append(list, "<li>"+renderInline(item)+"</li>")
			continue
		}

		flushList()
		paragraph = append(paragraph, trimmed)
	}

	// An unterminated fence renders as a code block rather than vanishing.
	if inCode {
		out = append(out, "<pre><code>"+strings.Join(codeBlock, "\n")+"</code></pre>")
	}
	flushParagraph()
	flushList()

	return template.HTML(strings.Join(out, "\n"))
}

// parseHeading recognizes ATX headings up to level six
func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[level+1:]), true
}

// parseListItem recognizes "- item" and "* item"
func parseListItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}

var (
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// renderInline escapes text and applies code spans, bold, and links.
// Code span contents are left verbatim so markup inside backticks does
// not get interpreted.
func renderInline(text string) string {
	segments := strings.Split(text, "`")
	var b strings.Builder
	for i, seg := range segments {
		escaped := html.EscapeString(seg)
		if i%2 == 1 && i != len(segments)-1 {
			b.WriteString("<code>" + escaped + "</code>")
			continue
		}
		// A dangling backtick (odd segment count ends the split) stays literal.
		if i%2 == 1 {
			b.WriteString("`" + escaped)
			continue
		}
		escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
		escaped = linkPattern.ReplaceAllString(escaped, `<a href="$2">$1</a>`)
		b.WriteString(escaped)
	}
	return b.String()
}
