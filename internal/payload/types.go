// Package payload maps the untyped data of a section onto one canonical
// Go type per section family. Every legacy shape is resolved here so the
// renderers only ever see the canonical form.
package payload

import (
	"fmt"

	"github.com/fnziad/ZeroTex/internal/freeform"
)

// Payload is implemented by every canonical section payload.
type Payload interface {
	payload()
}

// Text backs summary, research-interests, interests and languages.
type Text struct {
	Content string
}

type EducationEntry struct {
	Institution  string
	Location     string
	Degree       string
	GPA          string
	StartDate    string
	EndDate      string
	Thesis       string
	Coursework   string
	Achievements string
}

type Education struct {
	Entries []EducationEntry
}

// ExperienceEntry is shared by experience, professional-experience,
// extracurricular and research-experience.
type ExperienceEntry struct {
	Title       string // title, position or role
	Affiliation string // institution, organization or project
	Location    string
	StartDate   string
	EndDate     string
	Status      string
	Course      string
	Bullets     []string
}

type Experience struct {
	Entries []ExperienceEntry
}

type Project struct {
	Name         string
	Technologies string
	Date         string
	Link         string
	Bullets      []string
	Description  string // legacy single-string description
}

type Projects struct {
	Entries []Project
}

type Publication struct {
	Authors string
	Title   string
	Venue   string
	Year    string
	DOI     string
}

type Publications struct {
	Entries []Publication
}

// Certification is either a bare line (Plain) or a structured record.
type Certification struct {
	Plain        string
	Name         string
	Issuer       string
	Date         string
	CredentialID string
	Link         string
}

// IsPlain reports whether c came from a bare string.
func (c Certification) IsPlain() bool {
	return c.Plain != ""
}

type Certifications struct {
	Items []Certification
}

// Category is a named group of skills or awards.
type Category struct {
	Name  string
	Items []string
}

type Categories struct {
	Items []Category
}

type Custom struct {
	Content freeform.Content
}

// Unknown is returned for section types with no renderer.
type Unknown struct{}

func (Text) payload()           {}
func (Education) payload()      {}
func (Experience) payload()     {}
func (Projects) payload()       {}
func (Publications) payload()   {}
func (Certifications) payload() {}
func (Categories) payload()     {}
func (Custom) payload()         {}
func (Unknown) payload()        {}

// Issue is a non-fatal problem found while normalising a payload.
type Issue struct {
	SectionID string
	Field     string
	Message   string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("section %s: %s", i.SectionID, i.Message)
	}
	return fmt.Sprintf("section %s: %s: %s", i.SectionID, i.Field, i.Message)
}
