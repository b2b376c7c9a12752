package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/maxrects/internal/model"
)

const (
	layerBins  = "BINS"
	layerBoxes = "BOXES"
)

// ExportDXF writes one rectangle outline per bin on the BINS layer and one per
// placed item on the BOXES layer, using the canvas layout. DXF has Y pointing
// up, so rows are flipped to keep the picture the same way round as the PNG.
func ExportDXF(path string, bins []model.Bin, buffer int) error {
	if len(bins) == 0 {
		return ErrNothingToExport
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layerBins, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add layer %s: %w", layerBins, err)
	}
	if _, err := d.AddLayer(layerBoxes, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add layer %s: %w", layerBoxes, err)
	}

	layout := Layout(bins, buffer)
	_, canvasH := CanvasSize(layout)

	for i, bin := range bins {
		origin := layout[i]
		if err := d.ChangeLayer(layerBins); err != nil {
			return err
		}
		if err := drawRect(d, origin, canvasH); err != nil {
			return err
		}

		if err := d.ChangeLayer(layerBoxes); err != nil {
			return err
		}
		for _, p := range bin.Placed {
			if err := drawRect(d, p.Rect.Translate(origin.X, origin.Y), canvasH); err != nil {
				return err
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf %s: %w", path, err)
	}
	return nil
}

func drawRect(d *drawing.Drawing, r model.Rect, canvasH int) error {
	x0, x1 := float64(r.X), float64(r.Right())
	y0, y1 := float64(canvasH-r.Bottom()), float64(canvasH-r.Y)

	edges := [4][4]float64{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("draw line: %w", err)
		}
	}
	return nil
}
