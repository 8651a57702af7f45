// Package latex serialises a document tree into LaTeX source.
package latex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fnziad/ZeroTex/internal/ir"
)

const preamble = `\documentclass[10pt,a4paper]{article}

% --- PACKAGES ---
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{graphicx}
\usepackage{xcolor}
\usepackage{fontawesome5}
\usepackage{hyperref}
\usepackage{enumitem}
\usepackage{titlesec}
\usepackage{multicol}
\usepackage[left=1.5cm, top=1.5cm, right=1.5cm, bottom=1.5cm]{geometry}

% --- CUSTOMIZATIONS ---
\pagestyle{empty}
\setlength{\parindent}{0pt}
\setlist{nosep, leftmargin=*}

\definecolor{linkcolor}{rgb}{0.1, 0.4, 0.7}
\hypersetup{
    colorlinks=true,
    linkcolor=linkcolor,
    urlcolor=linkcolor,
}

\titleformat{\section}
  {\large\bfseries\scshape\color{black!75}}
  {}
  {0em}
  {}[\color{black!70}\hrule]
\titlespacing*{\section}{0pt}{0.7mm}{2mm}

\titleformat{\subsection}
  {\normalsize\bfseries\scshape\color{black!75}}
  {}
  {0em}
  {}[\color{black!70}\hrule height 0.3pt]
\titlespacing*{\subsection}{0pt}{0.7mm}{2mm}

% Compact list hanging off an entry
\newenvironment{project}{
    \begin{itemize}[leftmargin=3ex, rightmargin=2ex, noitemsep, labelsep=1.2mm, itemsep=0mm, topsep=0mm]\small
}{
    \end{itemize}
}

% --- DOCUMENT START ---
\begin{document}
`

const sectionGap = "\n\\vspace{0.7mm}\n"

var icons = map[ir.LinkIcon]string{
	ir.IconGlobe:    `\faIcon{globe}`,
	ir.IconLinkedIn: `\faIcon[regular]{linkedin}`,
	ir.IconGitHub:   `\faIcon[brands]{github}`,
	ir.IconLink:     `\faIcon{link}`,
}

var upper = cases.Upper(language.Und)

// Generate returns the complete LaTeX source for doc.
func Generate(doc *ir.Document) string {
	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n% --- HEADER ---\n")
	writeHeader(&sb, &doc.Header)
	sb.WriteString("\n")

	for _, s := range doc.Ledes() {
		for _, e := range s.Entries {
			writeEntry(&sb, e)
		}
		sb.WriteString("\\vspace{0.7mm}\n\n")
	}

	body := doc.Body()
	for i, s := range body {
		if i > 0 {
			sb.WriteString(sectionGap)
		}
		writeSection(&sb, s)
	}

	sb.WriteString("\n\\end{document}\n")
	return sb.String()
}

func writeHeader(sb *strings.Builder, h *ir.Header) {
	name := h.Name
	if strings.TrimSpace(name) == "" {
		name = "Your Name"
	}

	sb.WriteString("\\begin{center}\n")
	sb.WriteString("    {\\Huge \\bfseries " + Escape(name) + "}\\vspace{6pt}\\\\\n")
	sb.WriteString("    {\\small\n    ")

	contact := make([]string, 0, len(h.Contact))
	for _, sp := range h.Contact {
		contact = append(contact, span(sp))
	}
	links := make([]string, 0, len(h.Links))
	for _, l := range h.Links {
		links = append(links, `\href{`+escapeURL(l.URL)+`}{`+icons[l.Icon]+`\, `+Escape(l.Label)+`}`)
	}

	sb.WriteString(strings.Join(contact, ` \textbullet{} `))
	if len(contact) > 0 && len(links) > 0 {
		sb.WriteString("\\\\\n    ")
	}
	sb.WriteString(strings.Join(links, ` \quad `))
	sb.WriteString("\n    }\n    \\hline\n\\end{center}\n")
}

// writeSection emits the banner and body. The banner is always present,
// even for a section with no content.
func writeSection(sb *strings.Builder, s ir.Section) {
	title := Escape(upper.String(s.Title))
	sb.WriteString("% --- " + title + " ---\n")
	sb.WriteString("\\section*{" + title + "}\n")

	multi := s.Columns > 1
	if multi {
		sb.WriteString("\\begin{multicols}{2}\n")
	}
	for _, e := range s.Entries {
		writeEntry(sb, e)
	}
	if multi {
		sb.WriteString("\\end{multicols}\n")
	}
}

const lineBreak = `\\{}`

func writeEntry(sb *strings.Builder, e ir.Entry) {
	for i, b := range e.Blocks {
		if b.Kind == ir.BlockList {
			writeList(sb, b)
			continue
		}
		sb.WriteString(line(b))
		// \\ only between two text lines; a bare newline before a list or
		// at the end of an entry. The empty group stops \\ from reading a
		// leading [ or * of the next line as its own argument.
		if i+1 < len(e.Blocks) && e.Blocks[i+1].Kind != ir.BlockList {
			sb.WriteString(lineBreak)
		}
		sb.WriteString("\n")
	}
	if e.Gap {
		sb.WriteString("\\vspace{2mm}\n")
	}
	sb.WriteString("\n")
}

func line(b ir.Block) string {
	switch b.Kind {
	case ir.BlockRow:
		s := `\noindent ` + spans(b.Spans)
		if len(b.Right) > 0 {
			s += ` \hfill ` + spans(b.Right)
		}
		return s
	case ir.BlockKeyValue:
		return `\noindent\textbf{` + Escape(b.Key) + `:} ` + spans(b.Spans)
	default:
		return spans(b.Spans)
	}
}

func writeList(sb *strings.Builder, b ir.Block) {
	env := "itemize"
	if b.Nested {
		env = "project"
	}
	sb.WriteString("\\begin{" + env + "}\n")
	for _, item := range b.Items {
		sb.WriteString("    \\item " + spans(item) + "\n")
	}
	sb.WriteString("\\end{" + env + "}\n")
}

func spans(ss []ir.Span) string {
	var sb strings.Builder
	for _, sp := range ss {
		sb.WriteString(span(sp))
	}
	return sb.String()
}

func span(sp ir.Span) string {
	switch sp.Sep {
	case ir.SepBar:
		return ` \textbar{} `
	case ir.SepDash:
		return ` --- `
	case ir.SepRange:
		return ` -- `
	}

	s := Escape(sp.Text)
	if sp.Italic {
		s = `\textit{` + s + `}`
	}
	if sp.Bold {
		s = `\textbf{` + s + `}`
	}
	if sp.Href != "" {
		s = `\href{` + escapeURL(sp.Href) + `}{` + s + `}`
	}
	return s
}
