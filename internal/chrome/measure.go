package chrome

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/paginate"
)

// FragmentRenderer renders one flattened block as HTML.
type FragmentRenderer interface {
	Fragment(b ir.FlatBlock) (string, error)
}

// Measurer lays every block out in one off-screen page at the content
// width and reads back the bounding heights.
type Measurer struct {
	opts     Options
	geometry paginate.Geometry
	render   FragmentRenderer
	css      string
}

var _ paginate.Measurer = (*Measurer)(nil)

func NewMeasurer(opts Options, g paginate.Geometry, r FragmentRenderer, css string) *Measurer {
	return &Measurer{opts: opts.withDefaults(), geometry: g, render: r, css: css}
}

const measureScript = `Array.from(document.querySelectorAll('#measure > .m')).map(e => e.getBoundingClientRect().height)`

func (m *Measurer) Measure(ctx context.Context, blocks []ir.FlatBlock) ([]float64, error) {
	frags := make([]string, len(blocks))
	for i, b := range blocks {
		f, err := m.render.Fragment(b)
		if err != nil {
			return nil, err
		}
		frags[i] = f
	}

	var heights []float64
	page := measurementPage(frags, m.css, m.geometry.ContentWidthPX())
	if err := run(ctx, m.opts, page, chromedp.Evaluate(measureScript, &heights)); err != nil {
		return nil, fmt.Errorf("failed to measure blocks: %w", err)
	}
	m.opts.Logger.Debug(ctx, "measured blocks in chrome", "blocks", len(heights))
	return heights, nil
}

// measurementPage wraps each fragment in a flow-root box so its margins
// count towards its height.
func measurementPage(frags []string, css string, widthPX float64) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><style>")
	// css comes from our own renderer; only guard against an early </style>.
	sb.WriteString(strings.ReplaceAll(css, "</", "<\\/"))
	fmt.Fprintf(&sb, "\nbody { margin: 0; }\n#measure { width: %.2fpx; }\n#measure > .m { display: flow-root; }\n", widthPX)
	sb.WriteString("</style></head><body><div id=\"measure\">\n")
	for i, f := range frags {
		fmt.Fprintf(&sb, "<div class=\"m\" data-i=\"%d\">%s</div>\n", i, f)
	}
	sb.WriteString("</div></body></html>\n")
	return sb.String()
}
