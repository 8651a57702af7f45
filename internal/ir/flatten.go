package ir

import "strings"

// FlatKind tags a unit of pagination.
type FlatKind string

const (
	FlatHeader FlatKind = "header"
	FlatBanner FlatKind = "banner"
	FlatEntry  FlatKind = "entry"
)

// FlatBlock is the smallest unit the paginator moves between pages.
// Section and Entry point into the Document it was flattened from.
type FlatBlock struct {
	Kind         FlatKind
	KeepWithNext bool
	Header       *Header
	Section      *Section
	Entry        *Entry
}

// Lines returns the visual lines of the block as plain text, for estimation.
func (b FlatBlock) Lines() []string {
	switch b.Kind {
	case FlatHeader:
		lines := []string{b.Header.Name}
		if len(b.Header.Contact) > 0 {
			parts := make([]string, 0, len(b.Header.Contact))
			for _, c := range b.Header.Contact {
				parts = append(parts, c.Text)
			}
			lines = append(lines, strings.Join(parts, " • "))
		}
		if len(b.Header.Links) > 0 {
			labels := make([]string, 0, len(b.Header.Links))
			for _, l := range b.Header.Links {
				labels = append(labels, l.Label)
			}
			lines = append(lines, strings.Join(labels, "    "))
		}
		return lines
	case FlatBanner:
		return []string{b.Section.Title}
	}

	var lines []string
	for _, blk := range b.Entry.Blocks {
		switch blk.Kind {
		case BlockList:
			for _, item := range blk.Items {
				lines = append(lines, "• "+Text(item))
			}
		case BlockKeyValue:
			lines = append(lines, blk.Key+": "+Text(blk.Spans))
		case BlockRow:
			lines = append(lines, Text(blk.Spans)+"    "+Text(blk.Right))
		default:
			lines = append(lines, Text(blk.Spans))
		}
	}
	return lines
}

// Flatten splits d into header, banner and entry blocks in render order.
// A banner is kept with the entry that follows it. Lede sections have no banner.
func Flatten(d *Document) []FlatBlock {
	out := []FlatBlock{{Kind: FlatHeader, Header: &d.Header}}
	for i := range d.Sections {
		s := &d.Sections[i]
		if !s.Lede {
			out = append(out, FlatBlock{Kind: FlatBanner, Section: s, KeepWithNext: len(s.Entries) > 0})
		}
		for j := range s.Entries {
			out = append(out, FlatBlock{Kind: FlatEntry, Section: s, Entry: &s.Entries[j]})
		}
	}
	return out
}
