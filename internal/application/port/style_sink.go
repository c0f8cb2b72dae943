package port

import (
	"context"

	"github.com/bnema/plotfont/internal/domain/entity"
)

// StyleSink applies a style batch to the process-wide plotting defaults.
// The selection logic stays pure; this is the single place global rendering
// state is written. Apply is all-or-nothing: on error the defaults are left
// as they were.
type StyleSink interface {
	Apply(ctx context.Context, batch entity.StyleBatch, fontPath string) error
}
