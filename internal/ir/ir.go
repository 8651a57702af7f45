// Package ir is the backend-neutral document tree produced once from a
// resume and consumed by the markup, preview and print renderers.
package ir

import "strings"

// Separator is a glyph whose spelling differs per backend.
type Separator int

const (
	SepNone  Separator = iota
	SepBar             // title | organisation
	SepDash            // name --- issuer
	SepRange           // start -- end
)

// Span is a run of inline text.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Href   string
	Sep    Separator
}

// Plain returns a text span.
func Plain(s string) Span { return Span{Text: s} }

// Bold returns a bold span.
func Bold(s string) Span { return Span{Text: s, Bold: true} }

// Italic returns an italic span.
func Italic(s string) Span { return Span{Text: s, Italic: true} }

// Link returns a hyperlink span.
func Link(label, href string) Span { return Span{Text: label, Href: href} }

// Sep returns a separator span.
func Sep(s Separator) Span { return Span{Sep: s} }

// BlockKind enumerates the block nodes an entry is built from.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockKeyValue  BlockKind = "key-value"
	BlockRow       BlockKind = "row"
)

// Block is one visual line or list. Fields are used according to Kind:
//
//	heading, paragraph: Spans
//	row:                Spans on the left, Right flush right
//	key-value:          Key and Spans
//	list:               Items, Nested for lists hanging off an entry row
type Block struct {
	Kind   BlockKind
	Spans  []Span
	Right  []Span
	Key    string
	Items  [][]Span
	Nested bool
}

// Entry groups blocks that must stay together on a page.
type Entry struct {
	Blocks []Block
	Gap    bool // followed by a small vertical gap
}

// Section is a titled run of entries.
type Section struct {
	ID      string
	Type    string
	Title   string
	Lede    bool // rendered without a banner
	Columns int  // layout hint, 0 or 1 means a single column
	Entries []Entry
}

// Empty reports whether the section has no content blocks.
func (s Section) Empty() bool {
	for _, e := range s.Entries {
		if len(e.Blocks) > 0 {
			return false
		}
	}
	return true
}

// LinkIcon names the icon shown next to a header link.
type LinkIcon string

const (
	IconGlobe    LinkIcon = "globe"
	IconLinkedIn LinkIcon = "linkedin"
	IconGitHub   LinkIcon = "github"
	IconLink     LinkIcon = "link"
)

// HeaderLink is one link on the second header line.
type HeaderLink struct {
	Icon  LinkIcon
	Label string
	URL   string
}

// Header is the name block at the top of the document.
type Header struct {
	Name    string
	Contact []Span // one span per item: location, phone, email
	Links   []HeaderLink
}

// Document is the full tree.
type Document struct {
	Header   Header
	Sections []Section
}

// Ledes returns the sections flagged as ledes, in order.
func (d *Document) Ledes() []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Lede {
			out = append(out, s)
		}
	}
	return out
}

// Body returns the non-lede sections, in order.
func (d *Document) Body() []Section {
	var out []Section
	for _, s := range d.Sections {
		if !s.Lede {
			out = append(out, s)
		}
	}
	return out
}

// Text flattens spans into plain text with typographic separators.
func Text(spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		switch sp.Sep {
		case SepBar:
			sb.WriteString(" | ")
		case SepDash:
			sb.WriteString(" — ")
		case SepRange:
			sb.WriteString(" – ")
		default:
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}
