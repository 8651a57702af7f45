package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fnziad/ZeroTex/pkg/models"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id     string
		wantID string
		layout models.Layout
	}{
		{"modern", "modern", models.LayoutStandard},
		{"technical", "technical", models.LayoutTwoColumn},
		{"creative", "creative", models.LayoutSidebar},
		{"nope", "classic", models.LayoutStandard},
		{"", "classic", models.LayoutStandard},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := Get(tt.id)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.layout, got.Layout)
		})
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 6)
	all[0].ID = "changed"
	assert.Equal(t, "classic", All()[0].ID)

	_, ok := Lookup("changed")
	assert.False(t, ok)
}
