package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/plotfont/internal/domain/entity"
)

var sfPreferred = []string{"SF Pro Text", "SF Pro Display", "SF Mono"}

func TestSelectFont_PriorityOrder(t *testing.T) {
	registry := &fakeRegistry{registry: entity.Registry{
		"SF Pro Display": "/f/sfprodisplay.ttf",
		"SF Mono":        "/f/sfmono.ttf",
	}}
	uc := NewSelectFontUseCase(registry)

	out, err := uc.Execute(testContext(), SelectFontInput{Preferred: sfPreferred})
	require.NoError(t, err)

	assert.True(t, out.Found)
	assert.Equal(t, "SF Pro Display", out.Family)
	assert.Equal(t, "/f/sfprodisplay.ttf", out.Path)
	assert.Equal(t, []string{"SF Pro Display"}, out.Batch.FamilyList)
}

func TestSelectFont_NoMatch(t *testing.T) {
	registry := &fakeRegistry{registry: entity.Registry{"Arial": "/f/arial.ttf"}}
	uc := NewSelectFontUseCase(registry)

	out, err := uc.Execute(testContext(), SelectFontInput{Preferred: sfPreferred})
	require.NoError(t, err)

	assert.False(t, out.Found)
	assert.Empty(t, out.Family)
}

func TestSelectFont_EmptyRegistry(t *testing.T) {
	registry := &fakeRegistry{registry: entity.Registry{}}
	uc := NewSelectFontUseCase(registry)

	out, err := uc.Execute(testContext(), SelectFontInput{Preferred: sfPreferred})
	require.NoError(t, err)
	assert.False(t, out.Found)
}

func TestSelectFont_RegistryErrorPropagates(t *testing.T) {
	registryErr := errors.New("discovery broken")
	registry := &fakeRegistry{err: registryErr}
	uc := NewSelectFontUseCase(registry)

	_, err := uc.Execute(testContext(), SelectFontInput{Preferred: sfPreferred})
	assert.ErrorIs(t, err, registryErr)
}
