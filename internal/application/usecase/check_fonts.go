package usecase

import (
	"context"

	"github.com/bnema/plotfont/internal/application/port"
	"github.com/bnema/plotfont/internal/domain/selection"
)

// CheckFontsUseCase reports the availability of each preferred font, for
// the doctor command.
type CheckFontsUseCase struct {
	registry port.FontRegistry
}

// NewCheckFontsUseCase creates a new CheckFontsUseCase.
func NewCheckFontsUseCase(registry port.FontRegistry) *CheckFontsUseCase {
	return &CheckFontsUseCase{registry: registry}
}

// CheckFontsInput contains the preferred families in priority order.
type CheckFontsInput struct {
	Preferred []string
}

// FontCheck is the availability of one preferred family.
type FontCheck struct {
	Family    string
	Installed bool
	Path      string
}

// CheckFontsOutput is the doctor report.
type CheckFontsOutput struct {
	DiscoveryAvailable bool
	InstalledTotal     int
	Checks             []FontCheck
	Selected           string // empty when nothing would be selected
}

// Execute checks discovery availability and each preferred family.
func (uc *CheckFontsUseCase) Execute(ctx context.Context, input CheckFontsInput) (*CheckFontsOutput, error) {
	out := &CheckFontsOutput{
		DiscoveryAvailable: uc.registry.IsAvailable(ctx),
	}
	if !out.DiscoveryAvailable {
		for _, family := range input.Preferred {
			out.Checks = append(out.Checks, FontCheck{Family: family})
		}
		return out, nil
	}

	registry, err := uc.registry.Fonts(ctx)
	if err != nil {
		return nil, err
	}
	out.InstalledTotal = len(registry)

	for _, family := range input.Preferred {
		path, installed := registry.Lookup(family)
		out.Checks = append(out.Checks, FontCheck{
			Family:    family,
			Installed: installed,
			Path:      path,
		})
	}

	if result, found := selection.Select(input.Preferred, registry); found {
		out.Selected = result.Family
	}

	return out, nil
}
