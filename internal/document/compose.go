// Package document turns resume data into the backend-neutral tree in
// package ir. All three renderers start from Compose.
package document

import (
	"regexp"
	"strings"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/pkg/models"
)

// Options tunes composition.
type Options struct {
	// IncludeHidden renders hidden sections too.
	IncludeHidden bool
}

var customLink = regexp.MustCompile(`^([^:]+):\s*(.+)$`)

// Compose builds the document tree: the header followed by visible sections
// sorted by order. Payload problems are returned as issues; they never stop
// composition.
func Compose(data *models.ResumeData, opts Options) (*ir.Document, []payload.Issue) {
	doc := &ir.Document{Header: Header(data.Personal)}

	sections := data.VisibleSections()
	if opts.IncludeHidden {
		sections = data.SortedSections()
	}

	var issues []payload.Issue
	for _, s := range sections {
		p, found := payload.Normalize(s)
		issues = append(issues, found...)
		doc.Sections = append(doc.Sections, Section(s, p))
	}
	return doc, issues
}

// Header builds the name block from personal info.
func Header(p models.PersonalInfo) ir.Header {
	h := ir.Header{Name: strings.TrimSpace(p.FullName)}

	if p.Location != "" {
		h.Contact = append(h.Contact, ir.Plain(p.Location))
	}
	if p.Phone != "" {
		h.Contact = append(h.Contact, ir.Plain(p.Phone))
	}
	if p.Email != "" {
		h.Contact = append(h.Contact, ir.Link(p.Email, "mailto:"+p.Email))
	}

	if p.Website != "" {
		h.Links = append(h.Links, ir.HeaderLink{Icon: ir.IconGlobe, Label: p.Website, URL: withScheme(p.Website)})
	}
	if p.LinkedIn != "" {
		h.Links = append(h.Links, ir.HeaderLink{Icon: ir.IconLinkedIn, Label: p.LinkedIn, URL: profileURL(p.LinkedIn, "linkedin.com", "https://linkedin.com/in/")})
	}
	if p.GitHub != "" {
		h.Links = append(h.Links, ir.HeaderLink{Icon: ir.IconGitHub, Label: p.GitHub, URL: profileURL(p.GitHub, "github.com", "https://github.com/")})
	}
	for _, line := range strings.Split(p.CustomLinks, "\n") {
		m := customLink.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		h.Links = append(h.Links, ir.HeaderLink{
			Icon:  ir.IconLink,
			Label: strings.TrimSpace(m[1]),
			URL:   withScheme(strings.TrimSpace(m[2])),
		})
	}
	return h
}

func withScheme(u string) string {
	if strings.HasPrefix(u, "http") {
		return u
	}
	return "https://" + u
}

// profileURL expands a bare handle into a profile URL. Values already
// naming the host only gain a scheme.
func profileURL(v, host, base string) string {
	switch {
	case strings.HasPrefix(v, "http"):
		return v
	case strings.HasPrefix(v, host), strings.HasPrefix(v, "www."+host):
		return "https://" + v
	default:
		return base + strings.TrimPrefix(v, "@")
	}
}
