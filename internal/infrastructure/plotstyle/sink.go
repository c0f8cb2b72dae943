// Package plotstyle applies font style batches to gonum/plot.
package plotstyle

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bnema/plotfont/internal/domain/entity"
	"github.com/bnema/plotfont/internal/logging"
)

// Sink implements port.StyleSink against gonum/plot's process-wide font
// defaults. All validation happens before any global write, so a failed
// Apply leaves the defaults exactly as they were.
type Sink struct {
	mu      sync.Mutex
	applied *entity.StyleBatch
}

// NewSink creates a new gonum/plot style sink.
func NewSink() *Sink {
	return &Sink{}
}

// Apply loads the font file, registers the face under the batch's selected
// family name, and points the plotting defaults at it. Plots created after
// Apply pick the font up automatically; Style adjusts element sizes on
// individual plots.
func (s *Sink) Apply(ctx context.Context, batch entity.StyleBatch, fontPath string) error {
	log := logging.FromContext(ctx)

	family := batch.Selected()
	if family == "" || family == entity.GenericSansSerif {
		return fmt.Errorf("style batch has no concrete font family")
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("read font file %s: %w", fontPath, err)
	}

	face, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font file %s: %w", fontPath, err)
	}

	fnt := font.Font{Typeface: font.Typeface(family)}

	s.mu.Lock()
	defer s.mu.Unlock()

	font.DefaultCache.Add([]font.Face{{Font: fnt, Face: face}})
	plot.DefaultFont = fnt
	plotter.DefaultFont = fnt

	applied := batch
	s.applied = &applied

	log.Debug().Str("family", family).Str("file", fontPath).Msg("plot font defaults updated")
	return nil
}

// Applied returns the last applied batch, or nil when Apply has not run.
func (s *Sink) Applied() *entity.StyleBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied == nil {
		return nil
	}
	applied := *s.applied
	return &applied
}

// Style applies the batch's element sizes to a single plot: plot title,
// axis labels, and tick labels. A no-op when Apply has not run, so callers
// can use it unconditionally.
func (s *Sink) Style(p *plot.Plot) {
	s.mu.Lock()
	batch := s.applied
	s.mu.Unlock()
	if batch == nil {
		return
	}

	tf := font.Typeface(batch.Selected())

	p.Title.TextStyle.Font.Typeface = tf
	p.Title.TextStyle.Font.Size = vg.Points(batch.TitleSize)

	p.X.Label.TextStyle.Font.Typeface = tf
	p.X.Label.TextStyle.Font.Size = vg.Points(batch.LabelSize)
	p.Y.Label.TextStyle.Font.Typeface = tf
	p.Y.Label.TextStyle.Font.Size = vg.Points(batch.LabelSize)

	p.X.Tick.Label.Font.Typeface = tf
	p.X.Tick.Label.Font.Size = vg.Points(batch.TickLabelSize)
	p.Y.Tick.Label.Font.Typeface = tf
	p.Y.Tick.Label.Font.Size = vg.Points(batch.TickLabelSize)

	p.Legend.TextStyle.Font.Typeface = tf
	p.Legend.TextStyle.Font.Size = vg.Points(batch.TickLabelSize)
}

// StyleFigure is Style with the figure title size on the plot title, for
// the headline plot of a multi-plot figure.
func (s *Sink) StyleFigure(p *plot.Plot) {
	s.Style(p)

	s.mu.Lock()
	batch := s.applied
	s.mu.Unlock()
	if batch == nil {
		return
	}
	p.Title.TextStyle.Font.Size = vg.Points(batch.FigureTitleSize)
}
