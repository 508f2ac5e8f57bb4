package render

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// InlineRenderer styles the literal text of a block (emphasis, code spans,
// links). It never changes block structure.
type InlineRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewInlineRenderer() *InlineRenderer {
	return &InlineRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(util.Prioritized(literalHTML{}, 100)),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// literalHTML prints inline raw HTML as escaped text, so "a <div> element"
// keeps its tag visible instead of losing it.
type literalHTML struct{}

func (literalHTML) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, renderRawHTMLAsText)
}

func renderRawHTMLAsText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	segments := node.(*ast.RawHTML).Segments
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		if _, err := w.Write(util.EscapeHTML(seg.Value(source))); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkSkipChildren, nil
}

// HTML returns the sanitized inline markup for text. Text that goldmark
// would read as anything other than a single paragraph is escaped as-is.
func (r *InlineRenderer) HTML(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(html.EscapeString(text))
	}

	out := strings.TrimSpace(buf.String())
	inner, found := strings.CutPrefix(out, "<p>")
	if !found {
		return template.HTML(html.EscapeString(text))
	}
	inner, found = strings.CutSuffix(inner, "</p>")
	if !found || strings.Contains(inner, "<p>") {
		return template.HTML(html.EscapeString(text))
	}

	return template.HTML(r.policy.Sanitize(inner))
}
