package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/maxrects/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes a report with one page per bin, each showing the layout
// diagram and its statistics, followed by a summary page listing the
// remainder.
func ExportPDF(path string, result model.PlacementResult) error {
	if len(result.Bins) == 0 {
		return ErrNothingToExport
	}

	pdf := newReport(result)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func newReport(result model.PlacementResult) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, bin := range result.Bins {
		pdf.AddPage()
		renderBinPage(pdf, bin, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)
	return pdf
}

func binTitle(bin model.Bin, n int) string {
	if bin.Label != "" {
		return fmt.Sprintf("Bin %d: %s (%d x %d)", n, bin.Label, bin.Width, bin.Height)
	}
	return fmt.Sprintf("Bin %d: id %d (%d x %d)", n, bin.ID, bin.Width, bin.Height)
}

func renderBinPage(pdf *fpdf.Fpdf, bin model.Bin, n int) {
	contentW := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentW, headerHeight, binTitle(bin, n), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Boxes: %d | Used area: %d | Free area: %d | Efficiency: %.1f%% | Free rects: %d",
		len(bin.Placed), bin.UsedArea(), bin.FreeArea(), bin.Efficiency(), len(bin.FreeRects))
	pdf.CellFormat(contentW, 5, stats, "", 0, "L", false, 0, "")

	drawW := contentW
	drawH := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawW/float64(bin.Width), drawH/float64(bin.Height))

	canvasW := float64(bin.Width) * scale
	canvasH := float64(bin.Height) * scale
	offsetX := marginLeft + (drawW-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(binColor.R, binColor.G, binColor.B)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range bin.Placed {
		c := itemColor(i)
		pw := float64(p.Rect.Width) * scale
		ph := float64(p.Rect.Height) * scale
		px := offsetX + float64(p.Rect.X)*scale
		py := offsetY + float64(p.Rect.Y)*scale

		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := itemLabel(p.Box)
			dims := fmt.Sprintf("%dx%d", p.Box.Width, p.Box.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, bin, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, bin, offsetY+canvasH+5)
}

func itemLabel(b model.Box) string {
	if b.Label != "" {
		return b.Label
	}
	return b.ID
}

// drawDimensionAnnotations labels the bin width below and height to the left.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, bin model.Bin, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", bin.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", bin.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

func drawLegend(pdf *fpdf.Fpdf, bin model.Bin, startY float64) {
	if len(bin.Placed) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Boxes placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range bin.Placed {
		c := itemColor(i)
		label := fmt.Sprintf("%s (%dx%d @ %d,%d)", itemLabel(p.Box), p.Rect.Width, p.Rect.Height, p.Rect.X, p.Rect.Y)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY > pageHeight-marginBottom {
			break
		}

		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.PlacementResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Bins", fmt.Sprintf("%d", len(result.Bins))},
		{"Bins Used", fmt.Sprintf("%d", result.BinsUsed())},
		{"Boxes Placed", fmt.Sprintf("%d", len(result.Placed))},
		{"Boxes Remaining", fmt.Sprintf("%d", len(result.Remaining))},
		{"Percentage Packed", fmt.Sprintf("%.2f%%", result.Efficiency())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Bin Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 30, 50, 30, 35, 60}
	headers := []string{"#", "ID", "Dimensions", "Boxes", "Efficiency", "Used / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, bin := range result.Bins {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", bin.ID),
			fmt.Sprintf("%d x %d", bin.Width, bin.Height),
			fmt.Sprintf("%d", len(bin.Placed)),
			fmt.Sprintf("%.1f%%", bin.Efficiency()),
			fmt.Sprintf("%d / %d", bin.UsedArea(), bin.Area()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Remaining) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Boxes that fit no bin", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, b := range result.Remaining {
			if y > pageHeight-marginBottom-5 {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- %s: %d x %d", itemLabel(b), b.Width, b.Height), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by maxrects", "", 0, "C", false, 0, "")
}

// labelFontSize picks a font size that fits the rectangle.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
