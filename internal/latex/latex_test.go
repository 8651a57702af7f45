package latex

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnziad/ZeroTex/internal/document"
	"github.com/fnziad/ZeroTex/pkg/models"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R&D", `R\&D`},
		{`C:\dir`, `C:\textbackslash{}dir`},
		{"50% of $10 #1 a_b {x}", `50\% of \$10 \#1 a\_b \{x\}`},
		{"~^", `\textasciitilde{}\textasciicircum{}`},
		{`\&`, `\textbackslash{}\&`},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in), "Escape(%q)", tt.in)
	}
}

func TestEscapeAmpersandOnce(t *testing.T) {
	out := Escape("Research & Development")
	assert.Equal(t, 1, strings.Count(out, `\&`))
	assert.NotContains(t, out, `\\&`)
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		`\&%$#_{}~^`,
		`\\textbackslash{}`,
		"Ünïcode & more",
		`a\b{c}d~e^f`,
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "round trip of %q", in)
	}
}

func compose(t *testing.T, data *models.ResumeData) string {
	t.Helper()
	doc, _ := document.Compose(data, document.Options{})
	return Generate(doc)
}

// body returns the markup between \section*{title} and the next section or the end.
func body(t *testing.T, out, title string) string {
	t.Helper()
	marker := `\section*{` + title + "}\n"
	i := strings.Index(out, marker)
	require.GreaterOrEqual(t, i, 0, "section %s not found", title)
	rest := out[i+len(marker):]
	if j := strings.Index(rest, "% --- "); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSuffix(rest, "\n\\end{document}\n")
}

func TestGenerateEndToEnd(t *testing.T) {
	data := &models.ResumeData{
		Personal: models.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Sections: []models.ResumeSection{{
			ID: "experience-1", Type: models.SectionExperience, Title: "Experience", Visible: true,
			Data: json.RawMessage(`[{"position":"Analyst","organization":"Acme","bullets":["Did X",""]}]`),
		}},
	}

	out := compose(t, data)
	assert.True(t, strings.HasPrefix(out, `\documentclass[10pt,a4paper]{article}`))
	assert.Contains(t, out, `{\Huge \bfseries Ada Lovelace}`)
	assert.Contains(t, out, `\href{mailto:ada@example.com}{ada@example.com}`)
	assert.Contains(t, out, `\section*{EXPERIENCE}`)

	exp := body(t, out, "EXPERIENCE")
	assert.Contains(t, exp, `\textbf{Analyst} \textbar{} Acme`)
	assert.Equal(t, 1, strings.Count(exp, `\item`))
	assert.Contains(t, exp, `\item Did X`)
	assert.NotContains(t, exp, `\hfill`)
	assert.NotContains(t, exp, ` -- `)
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}

func TestGenerateCustomBullets(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{{
		ID: "custom-1", Type: models.SectionCustom, Title: "Notes", Visible: true,
		Data: json.RawMessage(`{"content":"- Alpha\n- Beta"}`),
	}}}

	notes := body(t, compose(t, data), "NOTES")
	assert.Equal(t, 2, strings.Count(notes, `\item`))
	assert.Less(t, strings.Index(notes, "Alpha"), strings.Index(notes, "Beta"))
	assert.NotContains(t, notes, "- Alpha")
	assert.Contains(t, notes, `\begin{itemize}`)
}

func TestGenerateEducationTwoLines(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{{
		ID: "education-1", Type: models.SectionEducation, Title: "Education", Visible: true,
		Data: json.RawMessage(`[{"institution":"MIT","degree":"BSc","gpa":"","coursework":"","achievements":""}]`),
	}}}

	edu := body(t, compose(t, data), "EDUCATION")
	var lines []string
	for _, l := range strings.Split(edu, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	assert.Equal(t, []string{`\noindent \textbf{MIT}\\{}`, `\noindent \textit{BSc}`}, lines)
	assert.NotContains(t, edu, "GPA:")
	assert.NotContains(t, edu, "Achievements:")
}

func TestGenerateLedeAndBanners(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{
		{ID: "p", Type: models.SectionProjects, Title: "Projects & Labs", Order: 0, Visible: true, Data: json.RawMessage(`[]`)},
		{ID: "s", Type: "executive-summary", Title: "Summary", Order: 1, Visible: true, Data: json.RawMessage(`{"content":"Builds 100% reliable tools"}`)},
	}}

	out := compose(t, data)
	assert.NotContains(t, out, `\section*{SUMMARY}`)
	lede := strings.Index(out, `Builds 100\% reliable tools`)
	banner := strings.Index(out, `\section*{PROJECTS \& LABS}`)
	require.GreaterOrEqual(t, lede, 0)
	require.GreaterOrEqual(t, banner, 0)
	assert.Less(t, lede, banner)
	assert.Contains(t, out, "% --- PROJECTS \\& LABS ---\n")
}

func TestGenerateCertificationsItemizeIsBalanced(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{{
		ID: "c", Type: models.SectionCertifications, Title: "Certifications", Visible: true,
		Data: json.RawMessage(`{"items":["AWS SAA","CKA"]}`),
	}}}

	certs := body(t, compose(t, data), "CERTIFICATIONS")
	assert.Equal(t, 1, strings.Count(certs, `\begin{itemize}`))
	assert.Equal(t, 1, strings.Count(certs, `\end{itemize}`))
	assert.Equal(t, 2, strings.Count(certs, `\item`))
}

func TestGenerateHeaderFallbackAndLinks(t *testing.T) {
	data := &models.ResumeData{Personal: models.PersonalInfo{
		Location: "London", Phone: "+44 1", GitHub: "ada", CustomLinks: "Blog: ada.dev/notes#top",
	}}

	out := compose(t, data)
	assert.Contains(t, out, `{\Huge \bfseries Your Name}`)
	assert.Contains(t, out, `London \textbullet{} +44 1\\`)
	assert.Contains(t, out, `\href{https://github.com/ada}{\faIcon[brands]{github}\, ada}`)
	assert.Contains(t, out, `\quad \href{https://ada.dev/notes\#top}{\faIcon{link}\, Blog}`)
}

func TestGenerateAwardsMulticols(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{{
		ID: "a", Type: models.SectionAwards, Title: "Awards", Visible: true,
		Data: json.RawMessage(`{"categories":[{"title":"A","items":"x"},{"title":"B","items":"y"},{"title":"C","items":"z, w"}]}`),
	}}}

	awards := body(t, compose(t, data), "AWARDS")
	assert.Contains(t, awards, `\begin{multicols}{2}`)
	assert.Contains(t, awards, `\end{multicols}`)
	assert.Equal(t, 4, strings.Count(awards, `\item`))
}

func TestGenerateLineBreakBeforeBracketOrStar(t *testing.T) {
	data := &models.ResumeData{Sections: []models.ResumeSection{{
		ID: "projects-1", Type: models.SectionProjects, Title: "Projects", Visible: true,
		Data: json.RawMessage(`[
{"name":"Engine","link":"https://x.dev","description":"[Beta] parser"},
{"name":"Two","description":"*Starred* work"}
]`),
	}}}

	proj := body(t, compose(t, data), "PROJECTS")
	assert.Contains(t, proj, "\\\\{}\n[Beta] parser")
	assert.Contains(t, proj, "\\noindent \\textbf{Two}\\\\{}\n*Starred* work")
	assert.NotContains(t, proj, "\\\\\n")
}
