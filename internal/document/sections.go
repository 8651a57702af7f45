package document

import (
	"strconv"
	"strings"

	"github.com/fnziad/ZeroTex/internal/freeform"
	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/pkg/models"
)

// Placeholder is shown for sections whose type has no renderer.
const Placeholder = "Content not available"

// Section renders one section's canonical payload into the tree.
func Section(s models.ResumeSection, p payload.Payload) ir.Section {
	typ := s.Type.Canonical()
	out := ir.Section{
		ID:    s.ID,
		Type:  string(typ),
		Title: s.Title,
		Lede:  typ == models.SectionSummary,
	}

	switch v := p.(type) {
	case payload.Text:
		out.Entries = text(v)
	case payload.Education:
		out.Entries = education(v)
	case payload.Experience:
		out.Entries = experience(v, typ == models.SectionResearchExperience)
	case payload.Projects:
		out.Entries = projects(v)
	case payload.Publications:
		out.Entries = publications(v)
	case payload.Certifications:
		out.Entries = certifications(v)
	case payload.Categories:
		if typ == models.SectionAwards {
			out.Entries = awards(v)
			if len(v.Items) > 2 {
				out.Columns = 2
			}
		} else {
			out.Entries = skills(v)
		}
	case payload.Custom:
		out.Entries = custom(v.Content)
	default:
		out.Entries = []ir.Entry{{Blocks: []ir.Block{paragraph(ir.Plain(Placeholder))}}}
	}
	return out
}

func paragraph(spans ...ir.Span) ir.Block {
	return ir.Block{Kind: ir.BlockParagraph, Spans: spans}
}

func list(nested bool, items []string) ir.Block {
	b := ir.Block{Kind: ir.BlockList, Nested: nested}
	for _, item := range items {
		b.Items = append(b.Items, []ir.Span{ir.Plain(item)})
	}
	return b
}

func keyValue(key, value string) ir.Block {
	return ir.Block{Kind: ir.BlockKeyValue, Key: key, Spans: []ir.Span{ir.Plain(value)}}
}

func row(left, right []ir.Span) ir.Block {
	return ir.Block{Kind: ir.BlockRow, Spans: left, Right: right}
}

// dateRange renders "start -- end". A start without an end runs to Present.
func dateRange(start, end string) []ir.Span {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return []ir.Span{ir.Plain(start), ir.Sep(ir.SepRange), ir.Plain(end)}
	case start != "":
		return []ir.Span{ir.Plain(start), ir.Sep(ir.SepRange), ir.Plain("Present")}
	case end != "":
		return []ir.Span{ir.Plain(end)}
	}
	return nil
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func text(v payload.Text) []ir.Entry {
	if !present(v.Content) {
		return nil
	}
	return []ir.Entry{{Blocks: []ir.Block{paragraph(ir.Plain(strings.TrimSpace(v.Content)))}}}
}

func education(v payload.Education) []ir.Entry {
	var out []ir.Entry
	for _, e := range v.Entries {
		var blocks []ir.Block

		var left []ir.Span
		if present(e.Institution) {
			left = append(left, ir.Bold(e.Institution))
		}
		if dates := dateRange(e.StartDate, e.EndDate); left != nil || dates != nil {
			blocks = append(blocks, row(left, dates))
		}

		left = nil
		if present(e.Degree) {
			left = append(left, ir.Italic(e.Degree))
		}
		var right []ir.Span
		if present(e.Location) {
			right = append(right, ir.Plain(e.Location))
		}
		if left != nil || right != nil {
			blocks = append(blocks, row(left, right))
		}

		for _, kv := range [][2]string{
			{"GPA", e.GPA},
			{"Thesis", e.Thesis},
			{"Relevant Coursework", e.Coursework},
			{"Achievements", e.Achievements},
		} {
			if present(kv[1]) {
				blocks = append(blocks, keyValue(kv[0], kv[1]))
			}
		}

		if len(blocks) > 0 {
			out = append(out, ir.Entry{Blocks: blocks})
		}
	}
	return out
}

// experience serves every experience-shaped section. Research entries show
// the affiliation in italics and fall back to status when undated.
func experience(v payload.Experience, research bool) []ir.Entry {
	var out []ir.Entry
	for _, e := range v.Entries {
		var blocks []ir.Block

		var left []ir.Span
		if present(e.Title) {
			left = append(left, ir.Bold(e.Title))
		}
		if present(e.Affiliation) {
			if left != nil {
				left = append(left, ir.Sep(ir.SepBar))
			}
			aff := ir.Plain(e.Affiliation)
			aff.Italic = research
			left = append(left, aff)
		}
		right := dateRange(e.StartDate, e.EndDate)
		if right == nil && present(e.Status) {
			right = []ir.Span{ir.Italic(e.Status)}
		}
		if left != nil || right != nil {
			blocks = append(blocks, row(left, right))
		}

		if present(e.Course) {
			blocks = append(blocks, paragraph(ir.Italic(e.Course)))
		}
		if len(e.Bullets) > 0 {
			blocks = append(blocks, list(true, e.Bullets))
		}

		if len(blocks) > 0 {
			out = append(out, ir.Entry{Blocks: blocks, Gap: true})
		}
	}
	return out
}

func projects(v payload.Projects) []ir.Entry {
	var out []ir.Entry
	for _, p := range v.Entries {
		var blocks []ir.Block

		var left, right []ir.Span
		if present(p.Name) {
			left = append(left, ir.Bold(p.Name))
			if present(p.Technologies) {
				left = append(left, ir.Sep(ir.SepBar), ir.Italic(p.Technologies))
			}
		}
		if present(p.Date) {
			right = append(right, ir.Plain(p.Date))
		}
		if left != nil || right != nil {
			blocks = append(blocks, row(left, right))
		}

		if present(p.Link) {
			blocks = append(blocks, paragraph(ir.Link(p.Link, p.Link)))
		}
		switch {
		case len(p.Bullets) > 0:
			blocks = append(blocks, list(true, p.Bullets))
		case present(p.Description):
			blocks = append(blocks, paragraph(ir.Plain(p.Description)))
		}

		if len(blocks) > 0 {
			out = append(out, ir.Entry{Blocks: blocks, Gap: true})
		}
	}
	return out
}

// publications renders `[n] authors. "title." venue, year. DOI: x` with each
// part dropped independently when empty.
func publications(v payload.Publications) []ir.Entry {
	var out []ir.Entry
	for i, p := range v.Entries {
		spans := []ir.Span{ir.Plain("[" + strconv.Itoa(i+1) + "]")}
		add := func(ss ...ir.Span) {
			spans = append(spans, ir.Plain(" "))
			spans = append(spans, ss...)
		}

		if present(p.Authors) {
			add(ir.Plain(strings.TrimSuffix(p.Authors, ".") + "."))
		}
		if present(p.Title) {
			add(ir.Plain(`"`), ir.Italic(p.Title), ir.Plain(`."`))
		}
		switch {
		case present(p.Venue) && present(p.Year):
			add(ir.Plain(p.Venue + ", " + p.Year + "."))
		case present(p.Venue):
			add(ir.Plain(p.Venue + "."))
		case present(p.Year):
			add(ir.Plain(p.Year + "."))
		}
		if present(p.DOI) {
			add(ir.Plain("DOI: " + p.DOI))
		}

		out = append(out, ir.Entry{Blocks: []ir.Block{paragraph(spans...)}, Gap: true})
	}
	return out
}

// certifications groups each run of bare strings into one list; structured
// records become their own entries.
func certifications(v payload.Certifications) []ir.Entry {
	var (
		out []ir.Entry
		run []string
	)
	flush := func() {
		if len(run) > 0 {
			out = append(out, ir.Entry{Blocks: []ir.Block{list(false, run)}})
			run = nil
		}
	}

	for _, c := range v.Items {
		if c.IsPlain() {
			run = append(run, c.Plain)
			continue
		}
		flush()

		var blocks []ir.Block
		var left, right []ir.Span
		if present(c.Name) {
			left = append(left, ir.Bold(c.Name))
		}
		if present(c.Issuer) {
			if left != nil {
				left = append(left, ir.Sep(ir.SepDash))
			}
			left = append(left, ir.Plain(c.Issuer))
		}
		if present(c.Date) {
			right = append(right, ir.Plain(c.Date))
		}
		if left != nil || right != nil {
			blocks = append(blocks, row(left, right))
		}
		if present(c.CredentialID) {
			blocks = append(blocks, keyValue("Credential ID", c.CredentialID))
		}
		if present(c.Link) {
			blocks = append(blocks, paragraph(ir.Link("View Certificate", c.Link)))
		}
		if len(blocks) > 0 {
			out = append(out, ir.Entry{Blocks: blocks, Gap: true})
		}
	}
	flush()
	return out
}

func skills(v payload.Categories) []ir.Entry {
	b := ir.Block{Kind: ir.BlockList}
	for _, c := range v.Items {
		items := strings.Join(c.Items, ", ")
		switch {
		case present(c.Name) && present(items):
			b.Items = append(b.Items, []ir.Span{ir.Bold(c.Name + ":"), ir.Plain(" " + items)})
		case present(items):
			b.Items = append(b.Items, []ir.Span{ir.Plain(items)})
		}
	}
	if len(b.Items) == 0 {
		return nil
	}
	return []ir.Entry{{Blocks: []ir.Block{b}}}
}

func awards(v payload.Categories) []ir.Entry {
	var out []ir.Entry
	for _, c := range v.Items {
		var blocks []ir.Block
		if present(c.Name) {
			blocks = append(blocks, ir.Block{Kind: ir.BlockHeading, Spans: []ir.Span{ir.Bold(c.Name)}})
		}
		if len(c.Items) > 0 {
			blocks = append(blocks, list(false, c.Items))
		}
		if len(blocks) > 0 {
			out = append(out, ir.Entry{Blocks: blocks})
		}
	}
	return out
}

func custom(c freeform.Content) []ir.Entry {
	var out []ir.Entry
	for _, b := range c.Blocks {
		switch b.Kind {
		case freeform.KindParagraph:
			out = append(out, ir.Entry{Blocks: []ir.Block{paragraph(ir.Plain(b.Text))}})
		case freeform.KindList:
			out = append(out, ir.Entry{Blocks: []ir.Block{list(false, b.Items)}})
		case freeform.KindGroup:
			blocks := []ir.Block{{Kind: ir.BlockHeading, Spans: []ir.Span{ir.Bold(b.Label + ":")}}}
			if len(b.Items) > 0 {
				blocks = append(blocks, list(false, b.Items))
			}
			out = append(out, ir.Entry{Blocks: blocks})
		}
	}
	return out
}
