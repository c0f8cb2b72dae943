package port

import (
	"context"

	"github.com/bnema/plotfont/internal/domain/entity"
)

// FontRegistry enumerates the fonts installed on the host system. The
// selection use cases only ever read the registry; implementations own
// caching and invalidation.
type FontRegistry interface {
	// Fonts returns a snapshot of the installed fonts, keyed by family name.
	// Returns an error if font discovery is not possible on this system.
	Fonts(ctx context.Context) (entity.Registry, error)

	// IsAvailable returns true if font discovery works on this system.
	IsAvailable(ctx context.Context) bool
}
