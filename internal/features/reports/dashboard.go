package reports

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"

	"sales-report/internal/storage/salesdb"
)

const (
	dashboardWidth  = 20 * vg.Inch
	dashboardHeight = 15 * vg.Inch
	dashboardCols   = 2
	dashboardRows   = 3
)

type panel struct {
	kind     Kind
	col, row int
	span     int
}

// dashboardLayout: city | month, product | state, december across the bottom.
var dashboardLayout = []panel{
	{kind: ByCity, col: 0, row: 0, span: 1},
	{kind: ByMonth, col: 1, row: 0, span: 1},
	{kind: ByProduct, col: 0, row: 1, span: 1},
	{kind: ByState, col: 1, row: 1, span: 1},
	{kind: InDecember, col: 0, row: 2, span: 2},
}

// Dashboard renders the five panels into one image at path. Every kind must
// have a row set; an empty one produces an empty panel.
func (r *Renderer) Dashboard(sets map[Kind]*salesdb.RowSet, m Metric, path string) error {
	cellW := dashboardWidth / dashboardCols
	cellH := dashboardHeight / dashboardRows

	for _, pn := range dashboardLayout {
		if sets[pn.kind] == nil {
			return fmt.Errorf("dashboard: no rows loaded for %s", pn.kind)
		}
	}

	images := make([]image.Image, len(dashboardLayout))
	var g errgroup.Group
	for i, pn := range dashboardLayout {
		rs := sets[pn.kind]
		g.Go(func() error {
			w := cellW * vg.Length(pn.span)
			p, err := r.newPlot(pn.kind, rs, m, w)
			if err != nil {
				return fmt.Errorf("dashboard panel %s: %w", pn.kind, err)
			}
			images[i] = r.rasterize(p, w, cellH)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	dc := gg.NewContext(r.pixels(dashboardWidth), r.pixels(dashboardHeight))
	dc.SetColor(color.White)
	dc.Clear()
	for i, pn := range dashboardLayout {
		dc.DrawImage(images[i], r.pixels(cellW)*pn.col, r.pixels(cellH)*pn.row)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save dashboard: %w", err)
	}
	return nil
}

func (r *Renderer) pixels(l vg.Length) int {
	return int(l.Dots(float64(r.opts.DPI)) + 0.5)
}
