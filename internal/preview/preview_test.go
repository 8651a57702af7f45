package preview

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnziad/ZeroTex/internal/document"
	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/templates"
	"github.com/fnziad/ZeroTex/pkg/models"
)

func sampleDoc(t *testing.T) *ir.Document {
	t.Helper()
	data := &models.ResumeData{
		Personal: models.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com", Location: "London"},
		Sections: []models.ResumeSection{
			{ID: "s", Type: models.SectionSummary, Title: "Summary", Order: 0, Visible: true, Data: json.RawMessage(`"Writes R&D notes"`)},
			{ID: "e", Type: models.SectionExperience, Title: "Experience", Order: 1, Visible: true,
				Data: json.RawMessage(`[{"position":"Analyst","organization":"Acme","startDate":"1842","bullets":["Did X"]}]`)},
			{ID: "p", Type: models.SectionProjects, Title: "Projects", Order: 2, Visible: true,
				Data: json.RawMessage(`[{"name":"Engine","link":"https://example.com/engine"},{"name":"Bad","link":"javascript:alert(1)"}]`)},
		},
	}
	doc, issues := document.Compose(data, document.Options{})
	require.Empty(t, issues)
	return doc
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := New(Options{}).Render(&buf, sampleDoc(t), templates.Get("modern"))
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Ada Lovelace</title>")
	assert.Contains(t, out, "--primary: #3498db")
	assert.Contains(t, out, "font-size: 10pt")
	assert.Contains(t, out, ">Ada Lovelace</h1>")
	assert.Contains(t, out, ">Experience</h2>")
	assert.NotContains(t, out, ">Summary</h2>")
	assert.Contains(t, out, "R&amp;D notes")
	assert.Contains(t, out, "<strong>Analyst</strong>")
	assert.Contains(t, out, `<span class="sep"> – </span>Present`)
	assert.Contains(t, out, "Did X</li>")
	assert.Contains(t, out, `href="https://example.com/engine"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.NotContains(t, out, `href="javascript:`)
}

func TestRenderLayoutCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{FontSizePt: 11, LineHeight: 1.4}).Render(&buf, sampleDoc(t), templates.Get("technical")))

	assert.Contains(t, buf.String(), "column-count: 2")
	assert.Contains(t, buf.String(), "font-size: 11pt")
	assert.Contains(t, buf.String(), "line-height: 1.4")
}

func TestRenderPages(t *testing.T) {
	doc := sampleDoc(t)
	blocks := ir.Flatten(doc)
	require.True(t, len(blocks) > 3)

	pages := [][]ir.FlatBlock{blocks[:3], blocks[3:]}
	var buf bytes.Buffer
	err := New(Options{}).RenderPages(&buf, doc, pages, templates.Get("classic"), "@page { size: 210mm 297mm; margin: 12mm 18mm; }\n")
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `class="page"`))
	assert.Contains(t, out, "@page { size: 210mm 297mm; margin: 12mm 18mm; }")
	assert.Contains(t, out, "break-inside: avoid")
}

func TestFragment(t *testing.T) {
	doc := sampleDoc(t)
	r := New(Options{})

	for _, b := range ir.Flatten(doc) {
		html, err := r.Fragment(b)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(html))
	}

	assert.Contains(t, r.Stylesheet(templates.Get("classic")), "Merriweather")
}
