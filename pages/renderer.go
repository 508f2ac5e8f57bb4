// Package pages renders the portfolio's server-side HTML views from
// embedded templates.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/render"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var requiredTemplates = []string{
	"home.tmpl",
	"blog.tmpl",
	"post.tmpl",
	"project.tmpl",
	"404.tmpl",
}

type Renderer struct {
	tpl *template.Template
}

func NewRenderer(inline *render.InlineRenderer) (*Renderer, error) {
	tpl, err := template.New("").Funcs(templateFuncs(inline)).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	for _, name := range requiredTemplates {
		if tpl.Lookup(name) == nil {
			return nil, fmt.Errorf("missing template: %s", name)
		}
	}
	return &Renderer{tpl: tpl}, nil
}

func templateFuncs(inline *render.InlineRenderer) template.FuncMap {
	return template.FuncMap{
		"inline": inline.HTML,
		"postURL": func(item models.ContentItem) string {
			return "/blog/" + item.Slug
		},
		"projectURL": func(item models.ContentItem) string {
			return "/projects/" + item.Slug
		},
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}
}

func (r *Renderer) RenderHome(page HomePage) ([]byte, error) {
	return r.exec("home.tmpl", page)
}

func (r *Renderer) RenderBlog(page BlogPage) ([]byte, error) {
	return r.exec("blog.tmpl", page)
}

func (r *Renderer) RenderPost(page PostPage) ([]byte, error) {
	return r.exec("post.tmpl", page)
}

func (r *Renderer) RenderProject(page ProjectPage) ([]byte, error) {
	return r.exec("project.tmpl", page)
}

func (r *Renderer) RenderNotFound(page NotFoundPage) ([]byte, error) {
	return r.exec("404.tmpl", page)
}

func (r *Renderer) exec(name string, data any) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
