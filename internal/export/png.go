package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/piwi3910/maxrects/internal/model"
)

// Render draws the bins and their placed items onto a new image. Bins are
// gray and each item gets a palette colour with a thin dark outline.
func Render(bins []model.Bin, buffer int) (image.Image, error) {
	if len(bins) == 0 {
		return nil, ErrNothingToExport
	}

	layout := Layout(bins, buffer)
	w, h := CanvasSize(layout)
	dc := gg.NewContext(w, h)

	dc.SetRGB255(backgroundColor.R, backgroundColor.G, backgroundColor.B)
	dc.Clear()

	n := 0
	for i, bin := range bins {
		origin := layout[i]
		dc.SetRGB255(binColor.R, binColor.G, binColor.B)
		dc.DrawRectangle(float64(origin.X), float64(origin.Y), float64(bin.Width), float64(bin.Height))
		dc.Fill()

		for _, p := range bin.Placed {
			r := p.Rect.Translate(origin.X, origin.Y)
			c := itemColor(n)
			n++

			dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
			dc.SetRGB255(c.R, c.G, c.B)
			dc.FillPreserve()
			dc.SetRGB255(30, 30, 30)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
	}
	return dc.Image(), nil
}

// WritePNG renders the bins and encodes the image as PNG to w.
func WritePNG(w io.Writer, bins []model.Bin, buffer int) error {
	img, err := Render(bins, buffer)
	if err != nil {
		return err
	}
	if err := gg.NewContextForImage(img).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG renders the bins into a PNG file at path.
func ExportPNG(path string, bins []model.Bin, buffer int) error {
	img, err := Render(bins, buffer)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
