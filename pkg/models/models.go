package models

import (
	"encoding/json"
	"errors"
)

// ErrSectionNotFound is returned by section lifecycle operations for unknown ids.
var ErrSectionNotFound = errors.New("section not found")

// SectionType is the closed tag selecting how a section's payload is read.
type SectionType string

const (
	SectionSummary                SectionType = "summary"
	SectionEducation              SectionType = "education"
	SectionResearchInterests      SectionType = "research-interests"
	SectionResearchExperience     SectionType = "research-experience"
	SectionExperience             SectionType = "experience"
	SectionProfessionalExperience SectionType = "professional-experience"
	SectionExtracurricular        SectionType = "extracurricular"
	SectionProjects               SectionType = "projects"
	SectionPublications           SectionType = "publications"
	SectionCertifications         SectionType = "certifications"
	SectionSkills                 SectionType = "skills"
	SectionAwards                 SectionType = "awards"
	SectionInterests              SectionType = "interests"
	SectionLanguages              SectionType = "languages"
	SectionCustom                 SectionType = "custom"

	// legacySummary is the tag older saved documents use for the summary.
	legacySummary SectionType = "executive-summary"
)

// SectionTypes lists every known tag in section-manager order.
var SectionTypes = []SectionType{
	SectionSummary,
	SectionEducation,
	SectionResearchInterests,
	SectionResearchExperience,
	SectionExperience,
	SectionProfessionalExperience,
	SectionExtracurricular,
	SectionProjects,
	SectionPublications,
	SectionCertifications,
	SectionSkills,
	SectionAwards,
	SectionInterests,
	SectionLanguages,
	SectionCustom,
}

var sectionLabels = map[SectionType]string{
	SectionSummary:                "Executive Summary / Bio",
	SectionEducation:              "Education",
	SectionResearchInterests:      "Research Interests",
	SectionResearchExperience:     "Research & Development",
	SectionExperience:             "Leadership & Experience",
	SectionProfessionalExperience: "Professional Experience",
	SectionExtracurricular:        "Extracurricular Activities",
	SectionProjects:               "Projects",
	SectionPublications:           "Publications",
	SectionCertifications:         "Certifications",
	SectionSkills:                 "Technical Skills",
	SectionAwards:                 "Awards & Recognitions",
	SectionInterests:              "Personal Interests",
	SectionLanguages:              "Languages",
	SectionCustom:                 "Custom Section",
}

// Canonical maps legacy aliases onto their current tag.
func (t SectionType) Canonical() SectionType {
	if t == legacySummary {
		return SectionSummary
	}
	return t
}

// Known reports whether t (after alias resolution) is a recognised tag.
func (t SectionType) Known() bool {
	_, ok := sectionLabels[t.Canonical()]
	return ok
}

// SectionLabel returns the human label used when a section is added without a title.
func SectionLabel(t SectionType) string {
	if l, ok := sectionLabels[t.Canonical()]; ok {
		return l
	}
	return string(t)
}

// PersonalInfo represents the header block of a resume
type PersonalInfo struct {
	FullName    string `json:"fullName"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	CustomLinks string `json:"customLinks"` // one "label: url" per line
}

// ResumeSection is one independently toggleable block of a resume.
// Data keeps whatever shape was saved; internal/payload reads it.
type ResumeSection struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title"`
	Order   int             `json:"order"`
	Visible bool            `json:"visible"`
	Data    json.RawMessage `json:"data"`
}

// ResumeData is the aggregate persisted as a single blob
type ResumeData struct {
	Personal PersonalInfo    `json:"personal"`
	Sections []ResumeSection `json:"sections"`
}

// Layout selects the visual arrangement of the preview and print views.
type Layout string

const (
	LayoutStandard  Layout = "standard"
	LayoutTwoColumn Layout = "two-column"
	LayoutSidebar   Layout = "sidebar"
	LayoutCompact   Layout = "compact"
	LayoutExpanded  Layout = "expanded"
)

// ColorScheme holds the three template colours as CSS hex strings.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TemplateConfig describes styling only; it never changes document content.
type TemplateConfig struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	FontFamily  string      `json:"fontFamily"`
	Colors      ColorScheme `json:"colorScheme"`
	Layout      Layout      `json:"layout"`
	Features    []string    `json:"features"`
}
