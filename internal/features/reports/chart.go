package reports

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"sales-report/internal/storage/salesdb"
)

// ErrNoRows is returned when a single chart is asked to plot an empty view.
var ErrNoRows = errors.New("no rows to plot")

var (
	seriesColor = color.RGBA{R: 76, G: 114, B: 176, A: 255}
	gridColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// Options holds the rendering settings that come from configuration.
type Options struct {
	DPI          int
	DecemberYMin float64
	DecemberYMax float64
}

// DefaultOptions matches the historical output: 100 dpi and a December
// y range of [125000, 175000].
func DefaultOptions() Options {
	return Options{DPI: 100, DecemberYMin: 125000, DecemberYMax: 175000}
}

// Renderer draws charts. It holds no per-call state.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.DPI <= 0 {
		opts.DPI = DefaultOptions().DPI
	}
	return &Renderer{opts: opts}
}

// Chart plots rs as chart kind for metric m and writes a PNG to path.
func (r *Renderer) Chart(kind Kind, rs *salesdb.RowSet, m Metric, path string) error {
	if rs.Len() == 0 {
		return fmt.Errorf("%s: %w", kind.spec().view, ErrNoRows)
	}

	spec := kind.spec()
	p, err := r.newPlot(kind, rs, m, spec.width)
	if err != nil {
		return err
	}

	img := r.rasterize(p, spec.width, spec.height)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// newPlot builds the plot for one chart. An empty row set yields a plot with
// title, axes and grid only.
func (r *Renderer) newPlot(kind Kind, rs *salesdb.RowSet, m Metric, width vg.Length) (*plot.Plot, error) {
	spec := kind.spec()
	s, err := buildSeries(spec, rs, m)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = kind.Title(m)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.xColumn
	p.Y.Label.Text = m.Column()

	p.Y.Tick.Marker = plainTicks{}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	if s.len() > 0 {
		switch spec.style {
		case barStyle:
			bars, err := plotter.NewBarChart(plotter.Values(s.ys), barWidth(width, s.len()))
			if err != nil {
				return nil, fmt.Errorf("failed to create bar chart %q: %w", p.Title.Text, err)
			}
			bars.Color = seriesColor
			bars.LineStyle.Width = 0
			p.Add(bars)
			p.NominalX(s.labels...)

		case lineStyle:
			pts := make(plotter.XYs, s.len())
			for i := range pts {
				pts[i].X = s.xs[i]
				pts[i].Y = s.ys[i]
			}
			line, points, err := plotter.NewLinePoints(pts)
			if err != nil {
				return nil, fmt.Errorf("failed to create line chart %q: %w", p.Title.Text, err)
			}
			line.Color = seriesColor
			line.Width = vg.Points(1.5)
			points.Shape = draw.CircleGlyph{}
			points.Color = seriesColor
			points.Radius = vg.Points(3)
			p.Add(line, points)
			if !spec.numericX {
				p.NominalX(s.labels...)
			}
		}
	}

	// Set after Add, which widens the axes to fit the data.
	if kind == InDecember {
		p.Y.Min = r.opts.DecemberYMin
		p.Y.Max = r.opts.DecemberYMax
	}
	return p, nil
}

func (r *Renderer) rasterize(p *plot.Plot, w, h vg.Length) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.opts.DPI))
	p.Draw(draw.New(c))
	return c.Image()
}

func barWidth(plotWidth vg.Length, n int) vg.Length {
	w := (plotWidth - 1.5*vg.Inch) / vg.Length(n) * 0.7
	if w < vg.Points(2) {
		w = vg.Points(2)
	}
	return w
}

// plainTicks keeps the default tick positions but prints values in plain
// notation (150000, not 1.5e+05).
type plainTicks struct{}

func (plainTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = humanize.Ftoa(ticks[i].Value)
		}
	}
	return ticks
}
