// Package markup converts authored text into HTML and tidies generated pages.
package markup

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yosssi/gohtml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Raw HTML in the source is escaped by goldmark's default renderer.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Markdown renders src to HTML for direct use in a template.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Pretty indents an HTML document. Input that gohtml cannot improve is
// returned unchanged.
func Pretty(page []byte) []byte {
	trimmed := bytes.TrimSpace(page)
	if len(trimmed) == 0 {
		return page
	}
	out := gohtml.FormatBytes(trimmed)
	if len(out) == 0 {
		return page
	}
	return out
}
