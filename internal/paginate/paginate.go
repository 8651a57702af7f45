package paginate

import (
	"context"
	"fmt"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/logging"
)

// Result is the outcome of paginating one document.
type Result struct {
	Pages   [][]ir.FlatBlock
	Heights []float64 // per block, in flatten order; nil after a fallback
	Budget  float64
	// Fallback is set when measurement failed and every block was put on
	// a single page.
	Fallback bool
	Err      error
}

// Paginator runs the measure-then-fold pipeline.
type Paginator struct {
	Geometry Geometry
	Measurer Measurer
	Logger   logging.Logger
}

// New returns a Paginator. A nil logger discards output.
func New(g Geometry, m Measurer, log logging.Logger) *Paginator {
	if log == nil {
		log = logging.Discard()
	}
	return &Paginator{Geometry: g, Measurer: m, Logger: log}
}

// Paginate splits doc into pages. It never fails: if measurement breaks,
// the whole document comes back as one page with Fallback set.
func (p *Paginator) Paginate(ctx context.Context, doc *ir.Document) Result {
	blocks := ir.Flatten(doc)
	budget := p.Geometry.ContentHeightPX()

	heights, err := p.Measurer.Measure(ctx, blocks)
	if err == nil && len(heights) != len(blocks) {
		err = fmt.Errorf("measured %d heights for %d blocks", len(heights), len(blocks))
	}
	if err != nil {
		p.Logger.Warn(ctx, "pagination measurement failed, using a single page", "error", err)
		return Result{Pages: [][]ir.FlatBlock{blocks}, Budget: budget, Fallback: true, Err: err}
	}

	items := make([]Item, len(blocks))
	for i, b := range blocks {
		items[i] = Item{Height: heights[i], KeepWithNext: b.KeepWithNext}
	}

	var pages [][]ir.FlatBlock
	for _, idx := range Split(items, budget) {
		page := make([]ir.FlatBlock, 0, len(idx))
		for _, i := range idx {
			page = append(page, blocks[i])
		}
		pages = append(pages, page)
	}
	p.Logger.Debug(ctx, "paginated document", "blocks", len(blocks), "pages", len(pages), "budget_px", budget)
	return Result{Pages: pages, Heights: heights, Budget: budget}
}
