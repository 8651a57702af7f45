package paginate

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/fnziad/ZeroTex/internal/ir"
)

// Measurer reports the rendered height in CSS pixels of every block,
// laid out at the content width.
type Measurer interface {
	Measure(ctx context.Context, blocks []ir.FlatBlock) ([]float64, error)
}

// pxPerPt converts points to CSS pixels.
const pxPerPt = 96.0 / 72.0

// EstimateMeasurer approximates heights from text length and font metrics
// without a layout engine. An average glyph is taken as half an em wide.
type EstimateMeasurer struct {
	Geometry   Geometry
	FontSizePt float64
	LineHeight float64
}

// NewEstimateMeasurer returns an estimator for the given typography.
func NewEstimateMeasurer(g Geometry, fontSizePt, lineHeight float64) *EstimateMeasurer {
	return &EstimateMeasurer{Geometry: g, FontSizePt: fontSizePt, LineHeight: lineHeight}
}

func (m *EstimateMeasurer) Measure(ctx context.Context, blocks []ir.FlatBlock) ([]float64, error) {
	fontPX := m.FontSizePt * pxPerPt
	linePX := fontPX * m.LineHeight

	heights := make([]float64, len(blocks))
	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch b.Kind {
		case ir.FlatHeader:
			lines := b.Lines()
			// name at 2.2em, then the contact lines
			h := 2.2 * linePX
			for _, l := range lines[1:] {
				h += float64(m.wrap(l, fontPX, 0)) * linePX
			}
			heights[i] = h + 0.5*fontPX
		case ir.FlatBanner:
			// 1.15em title, 1em of margins, 1px rule
			heights[i] = 1.15*linePX + fontPX + 1
		default:
			heights[i] = m.entry(b.Entry, fontPX, linePX)
		}
	}
	return heights, nil
}

func (m *EstimateMeasurer) entry(e *ir.Entry, fontPX, linePX float64) float64 {
	var h float64
	for _, blk := range e.Blocks {
		switch blk.Kind {
		case ir.BlockList:
			indent := 1.2 * fontPX
			if blk.Nested {
				indent = 3 * 0.5 * fontPX
			}
			for _, item := range blk.Items {
				h += float64(m.wrap(ir.Text(item), fontPX, indent)) * linePX
			}
		case ir.BlockKeyValue:
			h += float64(m.wrap(blk.Key+": "+ir.Text(blk.Spans), fontPX, 0)) * linePX
		case ir.BlockRow:
			h += float64(m.wrap(ir.Text(blk.Spans)+"    "+ir.Text(blk.Right), fontPX, 0)) * linePX
		default:
			h += float64(m.wrap(ir.Text(blk.Spans), fontPX, 0)) * linePX
		}
	}
	if e.Gap {
		h += 0.5 * fontPX
	}
	return h
}

// wrap returns how many lines s occupies; never less than one.
func (m *EstimateMeasurer) wrap(s string, fontPX, indentPX float64) int {
	width := m.Geometry.ContentWidthPX() - indentPX
	perLine := int(width / (0.5 * fontPX))
	if perLine < 1 {
		perLine = 1
	}
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 1
	}
	return int(math.Ceil(float64(n) / float64(perLine)))
}
