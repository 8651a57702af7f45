package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fnziad/ZeroTex/internal/chrome"
	"github.com/fnziad/ZeroTex/internal/config"
	"github.com/fnziad/ZeroTex/internal/database"
	"github.com/fnziad/ZeroTex/internal/document"
	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/latex"
	"github.com/fnziad/ZeroTex/internal/paginate"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/internal/preview"
	"github.com/fnziad/ZeroTex/internal/templates"
	"github.com/fnziad/ZeroTex/pkg/models"
)

// LoadResume returns the stored document. A corrupt row is logged and the
// default document comes back together with the error, so callers can warn
// and carry on.
func (a *App) LoadResume(ctx context.Context) (*models.ResumeData, error) {
	data, err := database.LoadResume()
	if errors.Is(err, database.ErrCorruptDocument) {
		a.Logger.Warn(ctx, "stored resume could not be read, using defaults", "error", err)
		return data, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return data, nil
}

func (a *App) SaveResume(ctx context.Context, data *models.ResumeData) error {
	if err := database.SaveResume(data); err != nil {
		return err
	}
	a.Logger.Debug(ctx, "saved resume", "sections", len(data.Sections))
	return nil
}

// Template resolves a template id, falling back to the configured default.
func (a *App) Template(id string) models.TemplateConfig {
	if id == "" {
		id = a.Config.Template
	}
	return templates.Get(id)
}

// Geometry builds the page geometry from config.
func (a *App) Geometry() (paginate.Geometry, error) {
	paper, err := paginate.PaperByName(a.Config.Paper)
	if err != nil {
		return paginate.Geometry{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return paginate.Geometry{
		Paper:        paper,
		MarginTopMM:  a.Config.MarginTopMM,
		MarginSideMM: a.Config.MarginSideMM,
	}, nil
}

func (a *App) Renderer() *preview.Renderer {
	return preview.New(preview.Options{FontSizePt: a.Config.FontSizePt, LineHeight: a.Config.LineHeight})
}

func (a *App) chromeOptions() chrome.Options {
	return chrome.Options{ExecPath: a.Config.ChromePath, Timeout: a.Config.ChromeTimeout, Logger: a.Logger}
}

// Compose builds the document tree and logs every payload issue at warn.
func (a *App) Compose(ctx context.Context, data *models.ResumeData, opts document.Options) (*ir.Document, []payload.Issue) {
	doc, issues := document.Compose(data, opts)
	for _, is := range issues {
		a.Logger.Warn(ctx, "section data problem", "section", is.SectionID, "field", is.Field, "problem", is.Message)
	}
	return doc, issues
}

// LaTeX writes the generated source for doc.
func (a *App) LaTeX(w io.Writer, doc *ir.Document) error {
	_, err := io.WriteString(w, latex.Generate(doc))
	return err
}

// HTML writes the single-page screen preview.
func (a *App) HTML(w io.Writer, doc *ir.Document, tc models.TemplateConfig) error {
	return a.Renderer().Render(w, doc, tc)
}

// Paginate splits doc into pages with the configured measurer.
func (a *App) Paginate(ctx context.Context, doc *ir.Document, tc models.TemplateConfig) (paginate.Result, error) {
	g, err := a.Geometry()
	if err != nil {
		return paginate.Result{}, err
	}
	return a.paginate(ctx, g, doc, tc), nil
}

func (a *App) paginate(ctx context.Context, g paginate.Geometry, doc *ir.Document, tc models.TemplateConfig) paginate.Result {
	var m paginate.Measurer
	switch a.Config.Measurer {
	case config.MeasurerChrome:
		r := a.Renderer()
		m = chrome.NewMeasurer(a.chromeOptions(), g, r, r.Stylesheet(tc))
	default:
		m = paginate.NewEstimateMeasurer(g, a.Config.FontSizePt, a.Config.LineHeight)
	}
	return paginate.New(g, m, a.Logger).Paginate(ctx, doc)
}

// PrintHTML writes the paged print document.
func (a *App) PrintHTML(ctx context.Context, w io.Writer, doc *ir.Document, tc models.TemplateConfig) (paginate.Result, error) {
	g, err := a.Geometry()
	if err != nil {
		return paginate.Result{}, err
	}
	return a.printHTML(ctx, g, w, doc, tc)
}

func (a *App) printHTML(ctx context.Context, g paginate.Geometry, w io.Writer, doc *ir.Document, tc models.TemplateConfig) (paginate.Result, error) {
	res := a.paginate(ctx, g, doc, tc)
	if err := a.Renderer().RenderPages(w, doc, res.Pages, tc, g.PageCSS()); err != nil {
		return res, err
	}
	return res, nil
}

// PDF prints the paged document through headless Chrome.
func (a *App) PDF(ctx context.Context, doc *ir.Document, tc models.TemplateConfig) ([]byte, error) {
	g, err := a.Geometry()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := a.printHTML(ctx, g, &buf, doc, tc); err != nil {
		return nil, err
	}
	return chrome.NewPrinter(a.chromeOptions(), g).PrintPDF(ctx, buf.String())
}
