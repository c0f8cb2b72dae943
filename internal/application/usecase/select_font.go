// Package usecase contains application business logic.
package usecase

import (
	"context"

	"github.com/bnema/plotfont/internal/application/port"
	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/domain/selection"
	"github.com/bnema/plotfont/internal/logging"
)

// SelectFontUseCase resolves the preferred font list against the host's
// installed fonts. It never writes any global state.
type SelectFontUseCase struct {
	registry port.FontRegistry
}

// NewSelectFontUseCase creates a new SelectFontUseCase.
func NewSelectFontUseCase(registry port.FontRegistry) *SelectFontUseCase {
	return &SelectFontUseCase{registry: registry}
}

// SelectFontInput contains the preferred families in priority order.
type SelectFontInput struct {
	Preferred []string
}

// SelectFontOutput contains the selection result. When Found is false the
// other fields are zero and the caller should leave the plotting defaults
// alone.
type SelectFontOutput struct {
	Found  bool
	Family string
	Path   string
	Batch  entity.StyleBatch
}

// Execute reads the registry once and selects the first preferred family
// present in it.
func (uc *SelectFontUseCase) Execute(ctx context.Context, input SelectFontInput) (*SelectFontOutput, error) {
	log := logging.FromContext(ctx)

	registry, err := uc.registry.Fonts(ctx)
	if err != nil {
		return nil, err
	}

	result, found := selection.Select(input.Preferred, registry)
	if !found {
		log.Debug().Strs("preferred", input.Preferred).Msg("no preferred font installed")
		return &SelectFontOutput{Found: false}, nil
	}

	log.Debug().Str("family", result.Family).Str("file", result.Path).Msg("selected preferred font")
	return &SelectFontOutput{
		Found:  true,
		Family: result.Family,
		Path:   result.Path,
		Batch:  result.Batch,
	}, nil
}
