// Package templates holds the built-in visual styles for the preview and
// print views.
package templates

import "github.com/fnziad/ZeroTex/pkg/models"

// DefaultID is used whenever a requested template does not exist.
const DefaultID = "classic"

var builtin = []models.TemplateConfig{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional single-column layout with serif headings",
		FontFamily:  "Merriweather",
		Colors:      models.ColorScheme{Primary: "#2c3e50", Secondary: "#7f8c8d", Accent: "#2c3e50"},
		Layout:      models.LayoutStandard,
		Features:    []string{"ATS friendly", "serif typography"},
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean sans-serif layout with blue accents",
		FontFamily:  "Inter",
		Colors:      models.ColorScheme{Primary: "#3498db", Secondary: "#2c3e50", Accent: "#3498db"},
		Layout:      models.LayoutStandard,
		Features:    []string{"ATS friendly", "accent colour"},
	},
	{
		ID:          "academic",
		Name:        "Academic",
		Description: "Roomy layout suited to publications and research",
		FontFamily:  "Merriweather",
		Colors:      models.ColorScheme{Primary: "#34495e", Secondary: "#7f8c8d", Accent: "#34495e"},
		Layout:      models.LayoutExpanded,
		Features:    []string{"publications", "research experience"},
	},
	{
		ID:          "technical",
		Name:        "Technical",
		Description: "Two-column layout for dense skill lists",
		FontFamily:  "Source Sans 3",
		Colors:      models.ColorScheme{Primary: "#2980b9", Secondary: "#7f8c8d", Accent: "#2980b9"},
		Layout:      models.LayoutTwoColumn,
		Features:    []string{"two columns", "skills first"},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Sidebar header with a purple accent",
		FontFamily:  "Raleway",
		Colors:      models.ColorScheme{Primary: "#8e44ad", Secondary: "#7f8c8d", Accent: "#8e44ad"},
		Layout:      models.LayoutSidebar,
		Features:    []string{"sidebar", "accent colour"},
	},
	{
		ID:          "executive",
		Name:        "Executive",
		Description: "Compact layout that fits more on one page",
		FontFamily:  "Merriweather",
		Colors:      models.ColorScheme{Primary: "#1a5276", Secondary: "#566573", Accent: "#1a5276"},
		Layout:      models.LayoutCompact,
		Features:    []string{"compact", "one page"},
	},
}

// All returns the built-in templates in display order.
func All() []models.TemplateConfig {
	out := make([]models.TemplateConfig, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup returns the template with the given id.
func Lookup(id string) (models.TemplateConfig, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return t, true
		}
	}
	return models.TemplateConfig{}, false
}

// Get returns the template with the given id, or classic.
func Get(id string) models.TemplateConfig {
	if t, ok := Lookup(id); ok {
		return t
	}
	t, _ := Lookup(DefaultID)
	return t
}
