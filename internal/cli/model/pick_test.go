package model

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/plotfont/internal/cli/styles"
	"github.com/bnema/plotfont/internal/domain/entity"
)

func testFaces() []entity.FontFace {
	return []entity.FontFace{
		{Family: "Arial", Path: "/f/arial.ttf"},
		{Family: "SF Mono", Path: "/f/sfmono.otf"},
		{Family: "SF Pro Text", Path: "/f/sfprotext.otf"},
	}
}

func typeString(m *PickModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPickModel_TypingFilters(t *testing.T) {
	m := NewPickModel(styles.NewTheme(), testFaces())

	typeString(m, "sf")
	require.Len(t, m.filtered, 2)
	assert.Equal(t, "SF Mono", m.filtered[0].Family)
}

func TestPickModel_BackspaceRemovesWholeRune(t *testing.T) {
	m := NewPickModel(styles.NewTheme(), testFaces())

	typeString(m, "mü")
	assert.Equal(t, "mü", m.query)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "m", m.query)
	assert.True(t, utf8.ValidString(m.query))

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.query)
	assert.Len(t, m.filtered, 3, "clearing the filter restores the full list")

	// Backspace on an empty query is a no-op.
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.query)
}

func TestPickModel_SelectSetsChoice(t *testing.T) {
	m := NewPickModel(styles.NewTheme(), testFaces())

	typeString(m, "mono")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Choice)
	assert.Equal(t, "SF Mono", m.Choice.Family)
}

func TestPickModel_QuitLeavesNoChoice(t *testing.T) {
	m := NewPickModel(styles.NewTheme(), testFaces())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Choice)
}
