package ui

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed docs/*.md
var docFiles embed.FS

// renderDoc converts an embedded markdown document to HTML for inlining into
// a page template. The documents are authored by us, so the output is trusted.
func renderDoc(name string) (template.HTML, error) {
	src, err := docFiles.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", name, err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML(markdown.NormalizeNewlines(src), p, renderer)

	return template.HTML(out), nil
}
