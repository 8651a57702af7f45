package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/pkg/models"
)

func TestComposeOrderAndVisibility(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{
		{ID: "a", Type: models.SectionInterests, Title: "A", Order: 2, Visible: true, Data: json.RawMessage(`"a"`)},
		{ID: "b", Type: models.SectionInterests, Title: "B", Order: 0, Visible: true, Data: json.RawMessage(`"b"`)},
		{ID: "c", Type: models.SectionInterests, Title: "C", Order: 1, Visible: false, Data: json.RawMessage(`"c"`)},
	}}

	doc, issues := Compose(data, Options{})
	require.Empty(t, issues)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "b", doc.Sections[0].ID)
	assert.Equal(t, "a", doc.Sections[1].ID)

	all, _ := Compose(data, Options{IncludeHidden: true})
	assert.Len(t, all.Sections, 3)
}

func TestEducationOmitsEmptyFields(t *testing.T) {
	s := models.ResumeSection{
		ID: "edu", Type: models.SectionEducation, Title: "Education", Visible: true,
		Data: json.RawMessage(`[{"institution":"MIT","location":"","degree":"BSc","gpa":"","startDate":"","endDate":"","coursework":"","achievements":""}]`),
	}
	data := &models.ResumeData{Sections: []models.ResumeSection{s}}

	doc, _ := Compose(data, Options{})
	require.Len(t, doc.Sections[0].Entries, 1)
	blocks := doc.Sections[0].Entries[0].Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, []ir.Span{ir.Bold("MIT")}, blocks[0].Spans)
	assert.Empty(t, blocks[0].Right)
	assert.Equal(t, []ir.Span{ir.Italic("BSc")}, blocks[1].Spans)
	for _, b := range blocks {
		assert.NotEqual(t, ir.BlockKeyValue, b.Kind)
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2020", "2024", "2020 – 2024"},
		{"2020", "", "2020 – Present"},
		{"", "2024", "2024"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ir.Text(dateRange(tt.start, tt.end)))
	}
}

func TestCertificationShapes(t *testing.T) {
	bare := models.ResumeSection{ID: "c1", Type: models.SectionCertifications, Visible: true,
		Data: json.RawMessage(`["AWS SAA","CKA",{"name":"GCP ACE","issuer":"Google"},"Terraform"]`)}
	doc, issues := Compose(&models.ResumeData{Sections: []models.ResumeSection{bare}}, Options{})
	require.Empty(t, issues)

	entries := doc.Sections[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, ir.BlockList, entries[0].Blocks[0].Kind)
	assert.Len(t, entries[0].Blocks[0].Items, 2)
	assert.Equal(t, "GCP ACE — Google", ir.Text(entries[1].Blocks[0].Spans))
	assert.Len(t, entries[2].Blocks[0].Items, 1)

	wrapped := models.ResumeSection{ID: "c2", Type: models.SectionCertifications, Visible: true,
		Data: json.RawMessage(`{"items":[{"name":"CKA","issuer":"CNCF","date":"2024","credentialId":"LF-1","link":"https://cncf.io/c"}]}`)}
	doc, _ = Compose(&models.ResumeData{Sections: []models.ResumeSection{wrapped}}, Options{})
	blocks := doc.Sections[0].Entries[0].Blocks
	require.Len(t, blocks, 3)
	assert.Equal(t, "2024", ir.Text(blocks[0].Right))
	assert.Equal(t, "Credential ID", blocks[1].Key)
	assert.Equal(t, "https://cncf.io/c", blocks[2].Spans[0].Href)
	assert.Equal(t, "View Certificate", blocks[2].Spans[0].Text)
}

func TestPublicationLine(t *testing.T) {
	s := models.ResumeSection{ID: "p", Type: models.SectionPublications, Visible: true,
		Data: json.RawMessage(`[
			{"authors":"A. Lovelace","title":"Notes","venue":"Taylor's Memoirs","year":"1843","doi":"10.1/x"},
			{"title":"Only Title"}
		]`)}
	doc, _ := Compose(&models.ResumeData{Sections: []models.ResumeSection{s}}, Options{})

	entries := doc.Sections[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, `[1] A. Lovelace. "Notes." Taylor's Memoirs, 1843. DOI: 10.1/x`, ir.Text(entries[0].Blocks[0].Spans))
	assert.Equal(t, `[2] "Only Title."`, ir.Text(entries[1].Blocks[0].Spans))
}

func TestAwardsColumnsAndSkills(t *testing.T) {
	awards := models.ResumeSection{ID: "aw", Type: models.SectionAwards, Visible: true,
		Data: json.RawMessage(`{"categories":[{"title":"A","items":"x"},{"title":"B","items":"y"},{"title":"C","items":"z"}]}`)}
	skills := models.ResumeSection{ID: "sk", Type: models.SectionSkills, Visible: true, Order: 1,
		Data: json.RawMessage(`{"categories":[{"name":"Languages","items":"Go, C"},{"name":"Empty","items":""}]}`)}
	doc, _ := Compose(&models.ResumeData{Sections: []models.ResumeSection{awards, skills}}, Options{})

	assert.Equal(t, 2, doc.Sections[0].Columns)
	assert.Len(t, doc.Sections[0].Entries, 3)

	items := doc.Sections[1].Entries[0].Blocks[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Languages: Go, C", ir.Text(items[0]))
}

func TestUnknownTypePlaceholder(t *testing.T) {
	s := models.ResumeSection{ID: "x", Type: "hobbies", Title: "Hobbies", Visible: true, Data: json.RawMessage(`"chess"`)}
	doc, issues := Compose(&models.ResumeData{Sections: []models.ResumeSection{s}}, Options{})

	assert.Len(t, issues, 1)
	assert.Equal(t, Placeholder, ir.Text(doc.Sections[0].Entries[0].Blocks[0].Spans))
}

func TestSummaryIsLede(t *testing.T) {
	s := models.ResumeSection{ID: "s", Type: "executive-summary", Title: "Summary", Visible: true, Data: json.RawMessage(`{"content":"Hello"}`)}
	doc, _ := Compose(&models.ResumeData{Sections: []models.ResumeSection{s}}, Options{})

	assert.True(t, doc.Sections[0].Lede)
	assert.Equal(t, "summary", doc.Sections[0].Type)
	assert.Len(t, doc.Ledes(), 1)
	assert.Empty(t, doc.Body())
}

func TestHeaderLinks(t *testing.T) {
	h := Header(models.PersonalInfo{
		FullName:    " Ada Lovelace ",
		Email:       "ada@example.com",
		Website:     "ada.dev",
		LinkedIn:    "ada-l",
		GitHub:      "github.com/ada",
		CustomLinks: "LeetCode: leetcode.com/ada\nnot a link\nBlog: http://blog.ada.dev",
	})

	assert.Equal(t, "Ada Lovelace", h.Name)
	require.Len(t, h.Contact, 1)
	assert.Equal(t, "mailto:ada@example.com", h.Contact[0].Href)

	require.Len(t, h.Links, 5)
	assert.Equal(t, "https://ada.dev", h.Links[0].URL)
	assert.Equal(t, "https://linkedin.com/in/ada-l", h.Links[1].URL)
	assert.Equal(t, "https://github.com/ada", h.Links[2].URL)
	assert.Equal(t, ir.HeaderLink{Icon: ir.IconLink, Label: "LeetCode", URL: "https://leetcode.com/ada"}, h.Links[3])
	assert.Equal(t, "http://blog.ada.dev", h.Links[4].URL)
}
