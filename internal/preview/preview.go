// Package preview renders a document tree as HTML: a single screen page,
// or a sequence of fixed-size pages for printing.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/pkg/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var funcs = template.FuncMap{
	"sep": func(s ir.Separator) string {
		switch s {
		case ir.SepBar:
			return " | "
		case ir.SepDash:
			return " — "
		case ir.SepRange:
			return " – "
		}
		return ""
	},
	"inc": func(i int) int { return i + 1 },
}

var pageTemplates = template.Must(template.New("preview").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml"))

// Options controls typography shared by the screen and print views.
type Options struct {
	FontSizePt float64
	LineHeight float64
}

// DefaultOptions mirrors the print stylesheet: 10pt at 1.2 line height.
var DefaultOptions = Options{FontSizePt: 10, LineHeight: 1.2}

// Renderer turns document trees into sanitised HTML.
type Renderer struct {
	opts   Options
	policy *bluemonday.Policy
}

// New creates a Renderer. Zero option fields take their defaults.
func New(opts Options) *Renderer {
	if opts.FontSizePt <= 0 {
		opts.FontSizePt = DefaultOptions.FontSizePt
	}
	if opts.LineHeight <= 0 {
		opts.LineHeight = DefaultOptions.LineHeight
	}
	return &Renderer{opts: opts, policy: newPolicy()}
}

// newPolicy keeps the markup the templates emit and nothing else. User
// links open in a new tab and may only use web or mail schemes.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("id").OnElements("section")
	p.AllowAttrs("data-page").OnElements("div")
	p.AllowElements("header", "section", "main", "div", "span", "p", "h1", "h2", "ul", "li", "strong", "em")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

type page struct {
	Title      string
	TemplateID string
	Layout     models.Layout
	CSS        template.CSS
	Body       template.HTML
}

// Render writes a complete screen preview page for doc.
func (r *Renderer) Render(w io.Writer, doc *ir.Document, tc models.TemplateConfig) error {
	body, err := r.execute("body", doc)
	if err != nil {
		return err
	}
	return r.writePage(w, doc, tc, r.screenCSS(tc), body)
}

// RenderPages writes a print document with one .page element per page.
// pageCSS carries the @page rule so the browser and the paginator share
// one geometry.
func (r *Renderer) RenderPages(w io.Writer, doc *ir.Document, pages [][]ir.FlatBlock, tc models.TemplateConfig, pageCSS string) error {
	body, err := r.execute("pages", pages)
	if err != nil {
		return err
	}
	return r.writePage(w, doc, tc, r.screenCSS(tc)+pageCSS+printCSS, body)
}

// Fragment renders a single flattened block, for off-screen measurement.
func (r *Renderer) Fragment(b ir.FlatBlock) (string, error) {
	return r.execute("flat", b)
}

// Stylesheet returns the CSS every fragment is measured under.
func (r *Renderer) Stylesheet(tc models.TemplateConfig) string {
	return r.screenCSS(tc) + printCSS
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

func (r *Renderer) writePage(w io.Writer, doc *ir.Document, tc models.TemplateConfig, css, body string) error {
	title := doc.Header.Name
	if title == "" {
		title = "Resume"
	}
	err := pageTemplates.ExecuteTemplate(w, "page", page{
		Title:      title,
		TemplateID: tc.ID,
		Layout:     tc.Layout,
		CSS:        template.CSS(css),
		Body:       template.HTML(body),
	})
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
