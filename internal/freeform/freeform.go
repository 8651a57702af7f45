// Package freeform parses the small line grammar used by custom sections.
//
// Three line kinds are recognised after trimming:
//
//	- item      a bullet
//	Label:      a label opening a group of bullets
//	anything    a paragraph
//
// Blank lines close an open list or group.
package freeform

import "strings"

// Version identifies the structured storage form of a Content.
const Version = "freeform/v1"

// Kind is the kind of a parsed block.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindGroup     Kind = "group"
)

// Shape summarises a Content for callers that only need the dominant form.
type Shape string

const (
	ShapeParagraph   Shape = "paragraph"
	ShapeBullets     Shape = "bullets"
	ShapeSubsections Shape = "subsections"
)

// Block is one paragraph, bullet list, or labelled group.
type Block struct {
	Kind  Kind     `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Label string   `json:"label,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Content is the parsed form of a custom section.
type Content struct {
	Format string  `json:"format,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Empty reports whether c has nothing to render.
func (c Content) Empty() bool {
	return len(c.Blocks) == 0
}

// Shape reports labels over bullets over paragraphs. Empty content is a paragraph.
func (c Content) Shape() Shape {
	shape := ShapeParagraph
	for _, b := range c.Blocks {
		switch b.Kind {
		case KindGroup:
			return ShapeSubsections
		case KindList:
			shape = ShapeBullets
		}
	}
	return shape
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "- ")
}

func isLabel(line string) bool {
	return len(line) > 1 && strings.HasSuffix(line, ":")
}

// Parse reads text into blocks.
func Parse(text string) Content {
	var (
		c    Content
		open *Block
	)
	flush := func() {
		if open != nil {
			c.Blocks = append(c.Blocks, *open)
			open = nil
		}
	}

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flush()
		case isBullet(line):
			item := strings.TrimSpace(line[2:])
			if open == nil {
				open = &Block{Kind: KindList}
			}
			open.Items = append(open.Items, item)
		case isLabel(line):
			flush()
			open = &Block{Kind: KindGroup, Label: strings.TrimSpace(strings.TrimSuffix(line, ":"))}
		default:
			flush()
			c.Blocks = append(c.Blocks, Block{Kind: KindParagraph, Text: line})
		}
	}
	flush()
	return c
}

// Format renders c back into canonical text.
func Format(c Content) string {
	return c.String()
}

// String renders c back into the line grammar. Blocks are separated by a
// blank line, so Parse(c.String()) reproduces any parsed c.
func (c Content) String() string {
	parts := make([]string, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		var sb strings.Builder
		switch b.Kind {
		case KindParagraph:
			sb.WriteString(b.Text)
		case KindList, KindGroup:
			if b.Kind == KindGroup {
				sb.WriteString(b.Label)
				sb.WriteString(":")
			}
			for i, item := range b.Items {
				if i > 0 || b.Kind == KindGroup {
					sb.WriteString("\n")
				}
				sb.WriteString("- ")
				sb.WriteString(item)
			}
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n\n")
}
