package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnziad/ZeroTex/internal/freeform"
	"github.com/fnziad/ZeroTex/pkg/models"
)

func section(typ models.SectionType, data string) models.ResumeSection {
	return models.ResumeSection{ID: string(typ) + "-1", Type: typ, Visible: true, Data: json.RawMessage(data)}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   string
		issues int
	}{
		{"string", `"Curious engineer"`, "Curious engineer", 0},
		{"wrapped", `{"content":"Curious engineer"}`, "Curious engineer", 0},
		{"number", `42`, "42", 0},
		{"null", `null`, "", 0},
		{"missing", ``, "", 0},
		{"list", `["a","b"]`, "", 1},
		{"invalid json", `{"content":`, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, issues := Normalize(section(models.SectionSummary, tt.data))
			assert.Equal(t, Text{Content: tt.want}, p)
			assert.Len(t, issues, tt.issues)
		})
	}
}

func TestNormalizeLegacySummaryAlias(t *testing.T) {
	p, issues := Normalize(section("executive-summary", `{"content":"Hi"}`))
	assert.Empty(t, issues)
	assert.Equal(t, Text{Content: "Hi"}, p)
}

func TestNormalizeCertificationShapes(t *testing.T) {
	bare, issues := Normalize(section(models.SectionCertifications, `["AWS SAA", "CKA"]`))
	require.Empty(t, issues)
	assert.Equal(t, Certifications{Items: []Certification{{Plain: "AWS SAA"}, {Plain: "CKA"}}}, bare)

	wrapped, issues := Normalize(section(models.SectionCertifications,
		`{"items":[{"name":"CKA","issuer":"CNCF","date":"2024","credentialId":"X-1","link":"https://cncf.io"}]}`))
	require.Empty(t, issues)
	assert.Equal(t, Certifications{Items: []Certification{{
		Name: "CKA", Issuer: "CNCF", Date: "2024", CredentialID: "X-1", Link: "https://cncf.io",
	}}}, wrapped)

	mixed, issues := Normalize(section(models.SectionCertifications, `["Plain", 3, {"name":"Rich"}]`))
	assert.Len(t, issues, 1)
	c := mixed.(Certifications)
	require.Len(t, c.Items, 2)
	assert.True(t, c.Items[0].IsPlain())
	assert.False(t, c.Items[1].IsPlain())
}

func TestNormalizeExperienceFieldFallbacks(t *testing.T) {
	p, issues := Normalize(section(models.SectionResearchExperience, `[
		{"role":"Research Assistant","project":"Compilers","status":"Ongoing","course":"CSE 400","bullets":["Built a parser",""," "]},
		{"position":"Analyst","organization":"Acme","title":"Senior Analyst","startDate":2020}
	]`))
	require.Empty(t, issues)

	exp := p.(Experience)
	require.Len(t, exp.Entries, 2)
	assert.Equal(t, ExperienceEntry{
		Title: "Research Assistant", Affiliation: "Compilers", Status: "Ongoing", Course: "CSE 400",
		Bullets: []string{"Built a parser"},
	}, exp.Entries[0])
	assert.Equal(t, "Senior Analyst", exp.Entries[1].Title)
	assert.Equal(t, "Acme", exp.Entries[1].Affiliation)
	assert.Equal(t, "2020", exp.Entries[1].StartDate)
}

func TestNormalizeScalarObjectsNeverLeak(t *testing.T) {
	p, issues := Normalize(section(models.SectionEducation, `[{"institution":{"name":"MIT"},"degree":"BSc","gpa":3.9}, "stray"]`))
	assert.Len(t, issues, 2)

	edu := p.(Education)
	require.Len(t, edu.Entries, 1)
	assert.Equal(t, "", edu.Entries[0].Institution)
	assert.Equal(t, "BSc", edu.Entries[0].Degree)
	assert.Equal(t, "3.9", edu.Entries[0].GPA)
}

func TestNormalizeProjects(t *testing.T) {
	p, issues := Normalize(section(models.SectionProjects, `[
		{"name":"ZeroTex","technologies":["Go","SQLite"],"dates":"2025","description":["Fast","Small"]},
		{"name":"Legacy","description":"One line"},
		{"name":"Bullets","bullets":["b1"]}
	]`))
	require.Empty(t, issues)

	projects := p.(Projects)
	require.Len(t, projects.Entries, 3)
	assert.Equal(t, Project{Name: "ZeroTex", Technologies: "Go, SQLite", Date: "2025", Bullets: []string{"Fast", "Small"}}, projects.Entries[0])
	assert.Equal(t, "One line", projects.Entries[1].Description)
	assert.Equal(t, []string{"b1"}, projects.Entries[2].Bullets)
}

func TestNormalizeCategories(t *testing.T) {
	skills, issues := Normalize(section(models.SectionSkills, `{"categories":[{"name":"Languages","items":"Go, Rust"},{"name":"Tools","items":["git","make"]},{"name":"Empty","items":""}]}`))
	require.Empty(t, issues)
	assert.Equal(t, Categories{Items: []Category{
		{Name: "Languages", Items: []string{"Go, Rust"}},
		{Name: "Tools", Items: []string{"git", "make"}},
		{Name: "Empty"},
	}}, skills)

	awards, issues := Normalize(section(models.SectionAwards, `{"categories":[{"title":"Contests","items":"ICPC Regional, \nHackathon Winner"}]}`))
	require.Empty(t, issues)
	assert.Equal(t, Categories{Items: []Category{
		{Name: "Contests", Items: []string{"ICPC Regional", "Hackathon Winner"}},
	}}, awards)
}

func TestNormalizeCustom(t *testing.T) {
	fromText, issues := Normalize(section(models.SectionCustom, `{"content":"- Alpha\n- Beta"}`))
	require.Empty(t, issues)
	want := freeform.Content{Blocks: []freeform.Block{{Kind: freeform.KindList, Items: []string{"Alpha", "Beta"}}}}
	assert.Equal(t, Custom{Content: want}, fromText)

	structured, issues := Normalize(section(models.SectionCustom,
		`{"format":"freeform/v1","blocks":[{"kind":"list","items":["Alpha","Beta"]},{"kind":"table"}]}`))
	assert.Len(t, issues, 1)
	assert.Equal(t, want.Blocks, structured.(Custom).Content.Blocks)
}

func TestNormalizeUnknownType(t *testing.T) {
	p, issues := Normalize(section("hobbies", `"chess"`))
	assert.Equal(t, Unknown{}, p)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].String(), "hobbies-1")
}
