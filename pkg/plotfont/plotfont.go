// Package plotfont configures gonum/plot to prefer specific fonts when they
// are installed on the host, falling back gracefully to the plotting
// defaults when they are not.
//
// The zero-argument entry point covers the common case:
//
//	plotfont.UseSFFonts()
//	p := plot.New()
//	plotfont.StylePlot(p)
package plotfont

import (
	"context"
	"fmt"

	"gonum.org/v1/plot"

	"github.com/bnema/plotfont/internal/application/port"
	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/config"
	"github.com/bnema/plotfont/internal/infrastructure/fonts"
	"github.com/bnema/plotfont/internal/infrastructure/plotstyle"
	"github.com/bnema/plotfont/internal/logging"
)

// PreferredSFFonts is the ordered priority list UseSFFonts tries. These are
// the family names macOS exposes for the SF fonts.
func PreferredSFFonts() []string {
	return append([]string(nil), config.DefaultPreferredFonts...)
}

// defaultSink is shared between Configure and StylePlot so per-plot styling
// sees the batch applied by the last successful selection.
var defaultSink = plotstyle.NewSink()

// Result reports what Configure did.
type Result struct {
	Found  bool
	Family string
	Path   string
}

type options struct {
	preferred []string
	registry  port.FontRegistry
	sink      port.StyleSink
}

// Option customizes Configure.
type Option func(*options)

// WithPreferred overrides the preferred family list.
func WithPreferred(families ...string) Option {
	return func(o *options) { o.preferred = families }
}

// WithRegistry injects a font registry, e.g. a synthetic one in tests.
func WithRegistry(registry port.FontRegistry) Option {
	return func(o *options) { o.registry = registry }
}

// WithSink injects a style sink instead of the gonum/plot defaults.
func WithSink(sink port.StyleSink) Option {
	return func(o *options) { o.sink = sink }
}

// Configure selects the first installed preferred font and applies its
// style batch to the plotting defaults. When none of the preferred fonts
// are installed, the defaults are left completely untouched and
// Result.Found is false; that is a normal outcome, not an error. Errors
// are reserved for discovery or font loading failures.
func Configure(ctx context.Context, opts ...Option) (Result, error) {
	o := options{
		preferred: PreferredSFFonts(),
		registry:  fonts.NewRegistry(),
		sink:      defaultSink,
	}
	for _, opt := range opts {
		opt(&o)
	}

	applyUC := usecase.NewApplyFontUseCase(o.registry, o.sink)
	out, err := applyUC.Execute(ctx, usecase.ApplyFontInput{Preferred: o.preferred})
	if err != nil {
		return Result{}, err
	}

	return Result{Found: out.Found, Family: out.Family, Path: out.Path}, nil
}

// UseSFFonts configures gonum/plot to use Apple SF fonts if available and
// prints a one-line notice with the outcome. Falls back gracefully when the
// fonts are not installed or discovery is unavailable; intended for scripts
// and notebooks that just want nicer plots.
func UseSFFonts() {
	logger := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), logger)

	result, err := Configure(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("font configuration failed")
		fmt.Println("SF fonts not found — using default plot font.")
		return
	}

	if result.Found {
		fmt.Printf("Using font: %s\n", result.Family)
	} else {
		fmt.Println("SF fonts not found — using default plot font.")
	}
}

// StylePlot applies the selected batch's element sizes (title, axis labels,
// tick labels) to a plot. A no-op when no font has been configured.
func StylePlot(p *plot.Plot) {
	defaultSink.Style(p)
}
