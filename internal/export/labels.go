package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/maxrects/internal/model"
)

// LabelInfo is the placement record encoded into each label's QR code.
type LabelInfo struct {
	BoxID  string `json:"box"`
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	BinID  int    `json:"bin"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// ErrNoPlacements is returned when there is nothing to label.
var ErrNoPlacements = errors.New("no placed boxes to label")

// Avery 5160 compatible layout: 3 columns by 10 rows on US Letter.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectLabelInfos lists one label per placed item in placement order.
func CollectLabelInfos(result model.PlacementResult) []LabelInfo {
	labels := make([]LabelInfo, 0, len(result.Placed))
	for _, p := range result.Placed {
		labels = append(labels, LabelInfo{
			BoxID:  p.Box.ID,
			Label:  p.Box.Label,
			Width:  p.Rect.Width,
			Height: p.Rect.Height,
			BinID:  p.BinID,
			X:      p.Rect.X,
			Y:      p.Rect.Y,
		})
	}
	return labels
}

// ExportLabels writes a sheet of QR-coded labels, one per placed box.
func ExportLabels(path string, result model.PlacementResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return ErrNoPlacements
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		pos := i % labelsPerPage
		x := labelMarginLeft + float64(pos%labelCols)*labelWidth
		y := labelMarginTop + float64(pos/labelCols)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("render label for box %s: %w", label.BoxID, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	return nil
}

func renderLabel(pdf *fpdf.Fpdf, x, y float64, n int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate qr code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", n, info.BoxID)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelWidth-qrSize-labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	title := info.Label
	if title == "" {
		title = info.BoxID
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	if pdf.GetStringWidth(title) > textW {
		for len(title) > 0 && pdf.GetStringWidth(title+"...") > textW {
			title = title[:len(title)-1]
		}
		title += "..."
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d x %d", info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Bin %d @ (%d, %d)", info.BinID, info.X, info.Y), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
