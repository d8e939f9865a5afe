package rst2htmldeco

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// linkPrefixer rewrites link and image destinations, so footer Markdown
// links resolve from the output directory like the rest of the fragments.
type linkPrefixer struct {
	resolve func(string) string
}

func (p *linkPrefixer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			v.Destination = []byte(p.resolve(string(v.Destination)))
		case *ast.Image:
			v.Destination = []byte(p.resolve(string(v.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// footerMarkdownToHTML converts footer Markdown to an HTML fragment.
// Raw HTML in the source is dropped (goldmark's safe default).
func footerMarkdownToHTML(source string, resolve func(string) string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Typographer,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(&linkPrefixer{resolve: resolve}, 100)),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // docutils emits XHTML
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFooterMarkdown, err)
	}
	return buf.String(), nil
}
