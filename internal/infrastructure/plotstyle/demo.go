package plotstyle

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bnema/plotfont/internal/logging"
)

// RenderDemo saves a sample plot to outPath so the configured font can be
// inspected visually. The output format follows the file extension
// (.png, .pdf, .svg, ...).
func RenderDemo(ctx context.Context, sink *Sink, outPath string) error {
	log := logging.FromContext(ctx)

	p := plot.New()
	p.Title.Text = "plotfont demo"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "sin(x)"

	pts := make(plotter.XYs, 100)
	for i := range pts {
		x := float64(i) / 99 * 2 * math.Pi
		pts[i].X = x
		pts[i].Y = math.Sin(x)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build demo line: %w", err)
	}
	p.Add(line)
	p.Legend.Add("sin", line)

	sink.StyleFigure(p)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save demo plot: %w", err)
	}

	log.Info().Str("file", outPath).Msg("demo plot rendered")
	return nil
}
