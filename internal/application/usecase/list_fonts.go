package usecase

import (
	"context"
	"strings"

	"github.com/bnema/plotfont/internal/application/port"
	"github.com/bnema/plotfont/internal/domain/entity"
)

// ListFontsUseCase enumerates the installed fonts for display.
type ListFontsUseCase struct {
	registry port.FontRegistry
}

// NewListFontsUseCase creates a new ListFontsUseCase.
func NewListFontsUseCase(registry port.FontRegistry) *ListFontsUseCase {
	return &ListFontsUseCase{registry: registry}
}

// ListFontsInput contains an optional case-insensitive family filter.
type ListFontsInput struct {
	Filter string
}

// ListFontsOutput contains the matching faces sorted by family name.
type ListFontsOutput struct {
	Faces []entity.FontFace
	Total int
}

// Execute lists installed fonts, filtered when a filter is given.
func (uc *ListFontsUseCase) Execute(ctx context.Context, input ListFontsInput) (*ListFontsOutput, error) {
	registry, err := uc.registry.Fonts(ctx)
	if err != nil {
		return nil, err
	}

	faces := registry.Faces()
	if input.Filter != "" {
		filter := strings.ToLower(input.Filter)
		filtered := faces[:0]
		for _, face := range faces {
			if strings.Contains(strings.ToLower(face.Family), filter) {
				filtered = append(filtered, face)
			}
		}
		faces = filtered
	}

	return &ListFontsOutput{Faces: faces, Total: len(registry)}, nil
}
