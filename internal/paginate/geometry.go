// Package paginate splits a flattened document into fixed-size pages:
// measure every block once, then fold the heights into pages.
package paginate

import (
	"errors"
	"fmt"
	"strings"
)

// PXPerMM converts millimetres to CSS pixels at 96 dpi.
const PXPerMM = 96 / 25.4

var ErrUnknownPaper = errors.New("unknown paper size")

// Paper is a sheet size in millimetres.
type Paper struct {
	Name     string
	WidthMM  float64
	HeightMM float64
}

var (
	A4     = Paper{Name: "A4", WidthMM: 210, HeightMM: 297}
	Letter = Paper{Name: "Letter", WidthMM: 215.9, HeightMM: 279.4}
)

// PaperByName resolves a case-insensitive paper name.
func PaperByName(name string) (Paper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4, nil
	case "letter":
		return Letter, nil
	}
	return Paper{}, fmt.Errorf("%w: %q", ErrUnknownPaper, name)
}

// WidthIn returns the paper width in inches.
func (p Paper) WidthIn() float64 { return p.WidthMM / 25.4 }

// HeightIn returns the paper height in inches.
func (p Paper) HeightIn() float64 { return p.HeightMM / 25.4 }

// Geometry is the printable page: paper minus margins.
type Geometry struct {
	Paper        Paper
	MarginTopMM  float64 // top and bottom
	MarginSideMM float64 // left and right
}

// DefaultGeometry matches the print stylesheet: A4 with 12mm by 18mm margins.
func DefaultGeometry() Geometry {
	return Geometry{Paper: A4, MarginTopMM: 12, MarginSideMM: 18}
}

// ContentHeightMM is the usable height of one page.
func (g Geometry) ContentHeightMM() float64 {
	return g.Paper.HeightMM - 2*g.MarginTopMM
}

// ContentWidthMM is the usable width of one page.
func (g Geometry) ContentWidthMM() float64 {
	return g.Paper.WidthMM - 2*g.MarginSideMM
}

// ContentHeightPX is the page budget handed to Split.
func (g Geometry) ContentHeightPX() float64 {
	return g.ContentHeightMM() * PXPerMM
}

func (g Geometry) ContentWidthPX() float64 {
	return g.ContentWidthMM() * PXPerMM
}

// PageCSS renders the @page rule and page box from the same numbers the
// paginator uses.
func (g Geometry) PageCSS() string {
	return fmt.Sprintf(`@page { size: %gmm %gmm; margin: %gmm %gmm; }
.page { width: %gmm; height: %gmm; }
@media screen {
  .page { padding: %gmm %gmm; margin: 0 auto 8mm; box-shadow: 0 0 4px rgba(0,0,0,.2); }
}
`, g.Paper.WidthMM, g.Paper.HeightMM, g.MarginTopMM, g.MarginSideMM,
		g.ContentWidthMM(), g.ContentHeightMM(),
		g.MarginTopMM, g.MarginSideMM)
}
