package chrome

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/fnziad/ZeroTex/internal/paginate"
)

// Printer prints paged HTML to PDF.
type Printer struct {
	opts     Options
	geometry paginate.Geometry
}

func NewPrinter(opts Options, g paginate.Geometry) *Printer {
	return &Printer{opts: opts.withDefaults(), geometry: g}
}

// PrintPDF renders html and returns the PDF bytes. The paper size comes
// from the geometry unless the page declares its own @page size.
func (p *Printer) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	const mmPerIn = 25.4
	g := p.geometry

	var pdf []byte
	err := run(ctx, p.opts, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(g.Paper.WidthIn()).
			WithPaperHeight(g.Paper.HeightIn()).
			WithMarginTop(g.MarginTopMM / mmPerIn).
			WithMarginBottom(g.MarginTopMM / mmPerIn).
			WithMarginLeft(g.MarginSideMM / mmPerIn).
			WithMarginRight(g.MarginSideMM / mmPerIn).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}
	p.opts.Logger.Info(ctx, "printed pdf", "bytes", len(pdf), "paper", g.Paper.Name)
	return pdf, nil
}
