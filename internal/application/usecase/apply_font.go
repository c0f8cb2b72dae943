package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/plotfont/internal/application/port"
	"github.com/bnema/plotfont/internal/logging"
)

// ApplyFontUseCase selects the first installed preferred font and applies
// its style batch to the plotting defaults through the style sink. Exactly
// one of two outcomes occurs: a match updates the defaults in one batch, a
// miss leaves them completely untouched.
type ApplyFontUseCase struct {
	selectUC *SelectFontUseCase
	sink     port.StyleSink
}

// NewApplyFontUseCase creates a new ApplyFontUseCase.
func NewApplyFontUseCase(registry port.FontRegistry, sink port.StyleSink) *ApplyFontUseCase {
	return &ApplyFontUseCase{
		selectUC: NewSelectFontUseCase(registry),
		sink:     sink,
	}
}

// ApplyFontInput contains the preferred families in priority order.
type ApplyFontInput struct {
	Preferred []string
}

// ApplyFontOutput reports what happened.
type ApplyFontOutput struct {
	Found  bool
	Family string
	Path   string
}

// Execute runs selection and, on a match, the global style update.
func (uc *ApplyFontUseCase) Execute(ctx context.Context, input ApplyFontInput) (*ApplyFontOutput, error) {
	log := logging.FromContext(ctx)

	selected, err := uc.selectUC.Execute(ctx, SelectFontInput(input))
	if err != nil {
		return nil, err
	}

	if !selected.Found {
		log.Info().Strs("preferred", input.Preferred).Msg("no preferred font found, keeping plot defaults")
		return &ApplyFontOutput{Found: false}, nil
	}

	if err := uc.sink.Apply(ctx, selected.Batch, selected.Path); err != nil {
		return nil, fmt.Errorf("apply style for %q: %w", selected.Family, err)
	}

	log.Info().Str("family", selected.Family).Msg("plot font configured")
	return &ApplyFontOutput{
		Found:  true,
		Family: selected.Family,
		Path:   selected.Path,
	}, nil
}
