package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fnziad/ZeroTex/internal/freeform"
	"github.com/fnziad/ZeroTex/pkg/models"
)

var awardSplit = regexp.MustCompile(`[\n,]`)

// reader collects issues while walking one section's decoded data.
type reader struct {
	sectionID string
	issues    []Issue
}

func (r *reader) warn(field, format string, args ...any) {
	r.issues = append(r.issues, Issue{SectionID: r.sectionID, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Normalize decodes a section's data into its canonical payload.
// Shape problems never fail: the affected part is left empty and reported.
func Normalize(s models.ResumeSection) (Payload, []Issue) {
	r := &reader{sectionID: s.ID}

	var raw any
	if len(bytes.TrimSpace(s.Data)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(s.Data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			r.warn("data", "invalid JSON: %v", err)
			raw = nil
		}
	}

	var p Payload
	switch s.Type.Canonical() {
	case models.SectionSummary, models.SectionResearchInterests,
		models.SectionInterests, models.SectionLanguages:
		p = r.text(raw)
	case models.SectionEducation:
		p = r.education(raw)
	case models.SectionExperience, models.SectionProfessionalExperience,
		models.SectionExtracurricular, models.SectionResearchExperience:
		p = r.experience(raw)
	case models.SectionProjects:
		p = r.projects(raw)
	case models.SectionPublications:
		p = r.publications(raw)
	case models.SectionCertifications:
		p = r.certifications(raw)
	case models.SectionSkills:
		p = r.categories(raw, false)
	case models.SectionAwards:
		p = r.categories(raw, true)
	case models.SectionCustom:
		p = r.custom(raw)
	default:
		r.warn("type", "unknown section type %q", s.Type)
		p = Unknown{}
	}
	return p, r.issues
}

// scalar formats strings, numbers and booleans. Anything else is empty.
func (r *reader) scalar(field string, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		r.warn(field, "expected text, got %s", kindOf(v))
		return ""
	}
}

// field returns the first non-blank value among keys.
func (r *reader) field(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		if s := r.scalar(k, v); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// textList reads an array of scalars, or a newline separated string.
func (r *reader) textList(field string, v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return nonBlank(strings.Split(t, "\n"))
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, r.scalar(field, item))
		}
		return nonBlank(out)
	default:
		r.warn(field, "expected a list, got %s", kindOf(v))
		return nil
	}
}

// joined reads a string, or an array joined with commas.
func (r *reader) joined(obj map[string]any, key string) string {
	v := obj[key]
	if arr, ok := v.([]any); ok {
		return strings.Join(r.textList(key, arr), ", ")
	}
	return r.scalar(key, v)
}

// objects reads an array of objects, skipping other elements.
func (r *reader) objects(v any) []map[string]any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]map[string]any, 0, len(t))
		for i, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				r.warn(fmt.Sprintf("[%d]", i), "expected an object, got %s", kindOf(item))
				continue
			}
			out = append(out, obj)
		}
		return out
	default:
		r.warn("data", "expected a list, got %s", kindOf(v))
		return nil
	}
}

func (r *reader) text(v any) Text {
	if obj, ok := v.(map[string]any); ok {
		return Text{Content: r.scalar("content", obj["content"])}
	}
	return Text{Content: r.scalar("data", v)}
}

func (r *reader) education(v any) Education {
	var out Education
	for _, obj := range r.objects(v) {
		out.Entries = append(out.Entries, EducationEntry{
			Institution:  r.field(obj, "institution", "school"),
			Location:     r.field(obj, "location"),
			Degree:       r.field(obj, "degree"),
			GPA:          r.field(obj, "gpa"),
			StartDate:    r.field(obj, "startDate"),
			EndDate:      r.field(obj, "endDate"),
			Thesis:       r.field(obj, "thesis"),
			Coursework:   r.joined(obj, "coursework"),
			Achievements: r.joined(obj, "achievements"),
		})
	}
	return out
}

func (r *reader) experience(v any) Experience {
	var out Experience
	for _, obj := range r.objects(v) {
		out.Entries = append(out.Entries, ExperienceEntry{
			Title:       r.field(obj, "title", "position", "role"),
			Affiliation: r.field(obj, "institution", "organization", "project"),
			Location:    r.field(obj, "location"),
			StartDate:   r.field(obj, "startDate"),
			EndDate:     r.field(obj, "endDate"),
			Status:      r.field(obj, "status"),
			Course:      r.field(obj, "course"),
			Bullets:     r.textList("bullets", obj["bullets"]),
		})
	}
	return out
}

func (r *reader) projects(v any) Projects {
	var out Projects
	for _, obj := range r.objects(v) {
		p := Project{
			Name:         r.field(obj, "name", "title"),
			Technologies: r.joined(obj, "technologies"),
			Date:         r.field(obj, "date", "dates"),
			Link:         r.field(obj, "link", "url"),
		}
		switch d := obj["description"].(type) {
		case []any:
			p.Bullets = r.textList("description", d)
		case nil:
		default:
			p.Description = r.scalar("description", d)
		}
		if len(p.Bullets) == 0 {
			p.Bullets = r.textList("bullets", obj["bullets"])
		}
		out.Entries = append(out.Entries, p)
	}
	return out
}

func (r *reader) publications(v any) Publications {
	var out Publications
	for _, obj := range r.objects(v) {
		out.Entries = append(out.Entries, Publication{
			Authors: r.joined(obj, "authors"),
			Title:   r.field(obj, "title"),
			Venue:   r.field(obj, "venue", "journal", "conference"),
			Year:    r.field(obj, "year"),
			DOI:     r.field(obj, "doi"),
		})
	}
	return out
}

func (r *reader) certifications(v any) Certifications {
	if obj, ok := v.(map[string]any); ok {
		v = obj["items"]
	}
	arr, ok := v.([]any)
	if !ok {
		if v != nil {
			r.warn("data", "expected a list, got %s", kindOf(v))
		}
		return Certifications{}
	}

	var out Certifications
	for i, item := range arr {
		switch t := item.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				out.Items = append(out.Items, Certification{Plain: t})
			}
		case map[string]any:
			out.Items = append(out.Items, Certification{
				Name:         r.field(t, "name", "title"),
				Issuer:       r.field(t, "issuer"),
				Date:         r.field(t, "date"),
				CredentialID: r.field(t, "credentialId"),
				Link:         r.field(t, "link", "url"),
			})
		default:
			r.warn(fmt.Sprintf("[%d]", i), "expected text or an object, got %s", kindOf(item))
		}
	}
	return out
}

// categories reads skills (split == false) and awards. Award item strings
// are split on commas and newlines; skill item strings are kept verbatim.
func (r *reader) categories(v any, split bool) Categories {
	if obj, ok := v.(map[string]any); ok {
		v = obj["categories"]
	}

	var out Categories
	for _, obj := range r.objects(v) {
		c := Category{Name: r.field(obj, "name", "title", "category")}
		switch items := obj["items"].(type) {
		case string:
			if split {
				c.Items = nonBlank(awardSplit.Split(items, -1))
			} else if strings.TrimSpace(items) != "" {
				c.Items = []string{items}
			}
		default:
			c.Items = r.textList("items", items)
		}
		out.Items = append(out.Items, c)
	}
	return out
}

func (r *reader) custom(v any) Custom {
	switch t := v.(type) {
	case nil:
		return Custom{}
	case string:
		return Custom{Content: freeform.Parse(t)}
	case map[string]any:
		if _, ok := t["blocks"]; ok {
			return Custom{Content: r.structured(t)}
		}
		return Custom{Content: freeform.Parse(r.scalar("content", t["content"]))}
	default:
		r.warn("data", "expected text or an object, got %s", kindOf(v))
		return Custom{}
	}
}

// structured decodes the stored {"format": ..., "blocks": [...]} form.
func (r *reader) structured(obj map[string]any) freeform.Content {
	var c freeform.Content
	b, err := json.Marshal(obj)
	if err == nil {
		err = json.Unmarshal(b, &c)
	}
	if err != nil {
		r.warn("blocks", "invalid structured content: %v", err)
		return freeform.Content{}
	}

	blocks := c.Blocks[:0]
	for i, blk := range c.Blocks {
		switch blk.Kind {
		case freeform.KindParagraph, freeform.KindList, freeform.KindGroup:
			blocks = append(blocks, blk)
		default:
			r.warn(fmt.Sprintf("blocks[%d]", i), "unknown block kind %q", blk.Kind)
		}
	}
	c.Blocks = blocks
	c.Format = ""
	return c
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
