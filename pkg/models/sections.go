package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// DefaultPayload returns the empty payload a freshly added section of type t starts with.
func DefaultPayload(t SectionType) json.RawMessage {
	switch t.Canonical() {
	case SectionSkills, SectionAwards:
		return json.RawMessage(`{"categories":[]}`)
	case SectionEducation, SectionResearchExperience, SectionExperience,
		SectionProfessionalExperience, SectionExtracurricular, SectionProjects,
		SectionPublications, SectionCertifications:
		return json.RawMessage(`[]`)
	case SectionCustom:
		return json.RawMessage(`{"content":""}`)
	default:
		return json.RawMessage(`""`)
	}
}

// NewSectionID builds an id of the form "<type>-<8 hex chars>".
func NewSectionID(t SectionType) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%x", t, id[:4])
}

// SortedSections returns a copy of the sections ordered by Order.
// Equal orders keep their collection order.
func (d *ResumeData) SortedSections() []ResumeSection {
	out := make([]ResumeSection, len(d.Sections))
	copy(out, d.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// VisibleSections returns the visible sections in render order.
func (d *ResumeData) VisibleSections() []ResumeSection {
	var out []ResumeSection
	for _, s := range d.SortedSections() {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

// Section looks a section up by id.
func (d *ResumeData) Section(id string) (*ResumeSection, error) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, id)
}

// AddSection appends a new visible section with an empty payload at the end of the order.
func (d *ResumeData) AddSection(t SectionType, title string) ResumeSection {
	t = t.Canonical()
	if title == "" {
		title = SectionLabel(t)
	}
	s := ResumeSection{
		ID:      NewSectionID(t),
		Type:    t,
		Title:   title,
		Order:   len(d.Sections),
		Visible: true,
		Data:    DefaultPayload(t),
	}
	d.Sections = append(d.Sections, s)
	return s
}

// RemoveSection drops the section with the given id.
func (d *ResumeData) RemoveSection(id string) error {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
}

// ToggleVisibility flips the visible flag and returns the new value.
func (d *ResumeData) ToggleVisibility(id string) (bool, error) {
	s, err := d.Section(id)
	if err != nil {
		return false, err
	}
	s.Visible = !s.Visible
	return s.Visible, nil
}

// SetSectionData replaces a section's payload wholesale.
func (d *ResumeData) SetSectionData(id string, data json.RawMessage) error {
	s, err := d.Section(id)
	if err != nil {
		return err
	}
	s.Data = data
	return nil
}

// MoveSection moves a section to position (0-based, clamped) in render
// order and rewrites every section's Order to its new index.
func (d *ResumeData) MoveSection(id string, position int) error {
	sorted := d.SortedSections()
	from := -1
	for i := range sorted {
		if sorted[i].ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}

	moved := sorted[from]
	sorted = append(sorted[:from], sorted[from+1:]...)
	if position < 0 {
		position = 0
	}
	if position > len(sorted) {
		position = len(sorted)
	}
	sorted = append(sorted[:position], append([]ResumeSection{moved}, sorted[position:]...)...)

	for i := range sorted {
		sorted[i].Order = i
	}
	d.Sections = sorted
	return nil
}
