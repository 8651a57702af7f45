package freeform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Content
		shape Shape
	}{
		{
			name:  "empty",
			input: "   \n\n",
			want:  Content{},
			shape: ShapeParagraph,
		},
		{
			name:  "bullets",
			input: "- Alpha\n- Beta",
			want:  Content{Blocks: []Block{{Kind: KindList, Items: []string{"Alpha", "Beta"}}}},
			shape: ShapeBullets,
		},
		{
			name:  "paragraph per line",
			input: "First line\n  Second line  ",
			want: Content{Blocks: []Block{
				{Kind: KindParagraph, Text: "First line"},
				{Kind: KindParagraph, Text: "Second line"},
			}},
			shape: ShapeParagraph,
		},
		{
			name:  "labelled groups",
			input: "Tools:\n- Go\n- SQLite\nHobbies:\n- Chess",
			want: Content{Blocks: []Block{
				{Kind: KindGroup, Label: "Tools", Items: []string{"Go", "SQLite"}},
				{Kind: KindGroup, Label: "Hobbies", Items: []string{"Chess"}},
			}},
			shape: ShapeSubsections,
		},
		{
			name:  "blank line closes group",
			input: "Tools:\n- Go\n\n- Loose",
			want: Content{Blocks: []Block{
				{Kind: KindGroup, Label: "Tools", Items: []string{"Go"}},
				{Kind: KindList, Items: []string{"Loose"}},
			}},
			shape: ShapeSubsections,
		},
		{
			name:  "paragraph ends list",
			input: "- one\nafter\n- two",
			want: Content{Blocks: []Block{
				{Kind: KindList, Items: []string{"one"}},
				{Kind: KindParagraph, Text: "after"},
				{Kind: KindList, Items: []string{"two"}},
			}},
			shape: ShapeBullets,
		},
		{
			name:  "lone colon is a paragraph",
			input: ":",
			want:  Content{Blocks: []Block{{Kind: KindParagraph, Text: ":"}}},
			shape: ShapeParagraph,
		},
		{
			name:  "dash without space is a paragraph",
			input: "-tight",
			want:  Content{Blocks: []Block{{Kind: KindParagraph, Text: "-tight"}}},
			shape: ShapeParagraph,
		},
		{
			name:  "crlf",
			input: "- a\r\n- b\r\n",
			want:  Content{Blocks: []Block{{Kind: KindList, Items: []string{"a", "b"}}}},
			shape: ShapeBullets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.shape, got.Shape())
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"- Alpha\n- Beta",
		"Intro text\n- one\n- two\nTools:\n- Go\nClosing",
		"Empty group:\n\nNotes:\n- a: b\n- c",
		"a :\n- x",
		"Languages:\n- Bengali (native)\n- English\n\n\n- stray",
	}

	for _, in := range inputs {
		c := Parse(in)
		assert.Equal(t, c, Parse(Format(c)), "input %q", in)
	}
}

func TestFormatCanonical(t *testing.T) {
	c := Content{Blocks: []Block{
		{Kind: KindParagraph, Text: "Hello"},
		{Kind: KindGroup, Label: "Tools", Items: []string{"Go"}},
		{Kind: KindList, Items: []string{"a", "b"}},
	}}

	assert.Equal(t, "Hello\n\nTools:\n- Go\n\n- a\n- b", Format(c))
}
