package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistry_FirstFileWins(t *testing.T) {
	registry := NewRegistry([]FontFace{
		{Family: "SF Pro Text", Path: "/fonts/sf-pro-text.ttf"},
		{Family: "SF Pro Text", Path: "/fonts/sf-pro-text-bold.ttf"},
		{Family: "Arial", Path: "/fonts/arial.ttf"},
	})

	path, ok := registry.Lookup("SF Pro Text")
	assert.True(t, ok)
	assert.Equal(t, "/fonts/sf-pro-text.ttf", path, "first discovered file should win")
	assert.Len(t, registry, 2)
}

func TestNewRegistry_SkipsEmptyFamilies(t *testing.T) {
	registry := NewRegistry([]FontFace{
		{Family: "", Path: "/fonts/broken.ttf"},
		{Family: "Arial", Path: "/fonts/arial.ttf"},
	})

	assert.Len(t, registry, 1)
	_, ok := registry.Lookup("")
	assert.False(t, ok)
}

func TestRegistry_FamiliesSorted(t *testing.T) {
	registry := Registry{
		"Zapfino":     "/fonts/zapfino.ttf",
		"Arial":       "/fonts/arial.ttf",
		"SF Pro Text": "/fonts/sf-pro-text.ttf",
	}

	assert.Equal(t, []string{"Arial", "SF Pro Text", "Zapfino"}, registry.Families())
}

func TestRegistry_Faces(t *testing.T) {
	registry := Registry{
		"B Font": "/fonts/b.ttf",
		"A Font": "/fonts/a.ttf",
	}

	faces := registry.Faces()
	assert.Equal(t, []FontFace{
		{Family: "A Font", Path: "/fonts/a.ttf"},
		{Family: "B Font", Path: "/fonts/b.ttf"},
	}, faces)
}

func TestNewStyleBatch(t *testing.T) {
	batch := NewStyleBatch("SF Pro Display")

	assert.Equal(t, GenericSansSerif, batch.Family)
	assert.Equal(t, []string{"SF Pro Display"}, batch.FamilyList)
	assert.Equal(t, "SF Pro Display", batch.Selected())
	assert.InDelta(t, 12.0, batch.TitleSize, 0)
	assert.InDelta(t, 10.0, batch.LabelSize, 0)
	assert.InDelta(t, 9.0, batch.TickLabelSize, 0)
	assert.InDelta(t, 13.0, batch.FigureTitleSize, 0)
}

func TestStyleBatch_Selected_EmptyFamilyList(t *testing.T) {
	batch := StyleBatch{Family: GenericSansSerif}
	assert.Equal(t, GenericSansSerif, batch.Selected())
}
