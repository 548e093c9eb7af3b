package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const siteTitle = "СХЛ | Студенческая Хоккейная Лига"

// Renderer exposes the embedded html/template set as templ components.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("web").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse web templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Component binds data to a named template.
func (r *Renderer) Component(name string, data any) templ.Component {
	t := r.templates.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(t, data)
}

// Wrap renders inner first and hands the markup to the outer template
// through build.
func (r *Renderer) Wrap(name string, inner templ.Component, build func(content template.HTML) any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content, err := renderHTML(ctx, inner)
		if err != nil {
			return err
		}
		return r.Component(name, build(content)).Render(ctx, w)
	})
}

type layoutData struct {
	Title   string
	Section string
	Body    template.HTML
}

func (r *Renderer) Page(title, section string, body templ.Component) templ.Component {
	return r.Wrap("layout", body, func(content template.HTML) any {
		return layoutData{Title: title, Section: section, Body: content}
	})
}

func renderHTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := c.Render(ctx, buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// IsFragmentRequest reports whether htmx asked for a partial update.
// Boosted navigations swap the whole body and get the full page.
func IsFragmentRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if strings.EqualFold(r.Header.Get("HX-Boosted"), "true") {
		return false
	}
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
