package preview

import (
	"fmt"
	"strings"

	"github.com/fnziad/ZeroTex/pkg/models"
)

// printCSS keeps entries whole and banners attached to their first entry.
const printCSS = `
@media print {
  body { margin: 0; }
}
.page { break-after: page; }
.page:last-child { break-after: auto; }
.entry, .resume-header { break-inside: avoid; page-break-inside: avoid; }
h2.banner { break-after: avoid; page-break-after: avoid; }
`

var layoutCSS = map[models.Layout]string{
	models.LayoutTwoColumn: `.resume-body { column-count: 2; column-gap: 1.5em; }
.section { break-inside: avoid-column; }`,
	models.LayoutSidebar: `.resume { display: grid; grid-template-columns: 30% 1fr; gap: 1.5em; }
.resume-header { text-align: left; border-right: 2px solid var(--accent); padding-right: 1em; }
.resume-header .links a { display: block; margin: 0; }`,
	models.LayoutCompact: `.entry { margin-bottom: 0.2em; }
h2.banner { margin: 0.4em 0 0.2em; }`,
	models.LayoutExpanded: `.entry { margin-bottom: 0.8em; }
h2.banner { margin: 1em 0 0.5em; }`,
}

func (r *Renderer) screenCSS(tc models.TemplateConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `:root { --primary: %s; --secondary: %s; --accent: %s; }
body { font-family: %q, Georgia, serif; font-size: %gpt; line-height: %g; color: #222; }
.resume-header { text-align: center; margin-bottom: 0.5em; }
.resume-header h1 { color: var(--primary); margin: 0; font-size: 2.2em; }
.contact { color: var(--secondary); margin: 0.2em 0; }
.links a { margin: 0 0.6em; }
a { color: var(--accent); text-decoration: none; }
h2.banner { color: var(--primary); text-transform: uppercase; font-variant: small-caps; font-size: 1.15em; border-bottom: 1px solid var(--secondary); margin: 0.7em 0 0.3em; }
.lede p { font-style: italic; }
.row { display: flex; justify-content: space-between; gap: 1em; }
.row .right { white-space: nowrap; color: var(--secondary); }
.entry p, .entry ul { margin: 0; }
.entry.gap { margin-bottom: 0.5em; }
ul { padding-left: 1.2em; }
ul.nested { font-size: 0.95em; padding-left: 3ex; }
.cols-2 .entry { display: inline-block; width: 48%%; vertical-align: top; }
.subheading { font-weight: bold; }
`, tc.Colors.Primary, tc.Colors.Secondary, tc.Colors.Accent, tc.FontFamily, r.opts.FontSizePt, r.opts.LineHeight)

	if extra, ok := layoutCSS[tc.Layout]; ok {
		sb.WriteString(extra)
		sb.WriteString("\n")
	}
	return sb.String()
}
