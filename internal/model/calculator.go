package model

import "math"

// PackedPercentage returns the area of the given boxes as a percentage of the
// total area of bins. It returns 0 when there is no bin area.
func PackedPercentage(boxes []Box, bins []Bin) float64 {
	var binArea int
	for _, b := range bins {
		binArea += b.Area()
	}
	if binArea == 0 {
		return 0
	}

	var boxArea int
	for _, b := range boxes {
		boxArea += b.Area()
	}
	return float64(boxArea) / float64(binArea) * 100.0
}

// BinEstimate holds an area-based lower bound on the bins a box list needs.
type BinEstimate struct {
	TotalBoxArea     int     `json:"total_box_area"`
	BinArea          int     `json:"bin_area"`
	BinsNeededExact  float64 `json:"bins_needed_exact"`
	BinsNeededMin    int     `json:"bins_needed_min"`
	BinsWithWaste    int     `json:"bins_with_waste"`
	WastePercent     float64 `json:"waste_percent"`
	OversizedBoxes   int     `json:"oversized_boxes"` // Boxes larger than the bin in either direction
	PlaceableBoxArea int     `json:"placeable_box_area"`
}

// EstimateBins computes how many binW x binH bins a box list needs by area
// alone, plus a margin of wastePercent. Boxes that cannot fit a bin at all are
// counted separately and left out of the area totals used for the bound.
func EstimateBins(boxes []Box, binW, binH int, wastePercent float64) BinEstimate {
	est := BinEstimate{WastePercent: wastePercent}
	for _, b := range boxes {
		est.TotalBoxArea += b.Area()
		if b.Width > binW || b.Height > binH {
			est.OversizedBoxes++
			continue
		}
		est.PlaceableBoxArea += b.Area()
	}

	est.BinArea = binW * binH
	if est.BinArea <= 0 {
		return est
	}

	est.BinsNeededExact = float64(est.PlaceableBoxArea) / float64(est.BinArea)
	est.BinsNeededMin = int(math.Ceil(est.BinsNeededExact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	est.BinsWithWaste = int(math.Ceil(est.BinsNeededExact * wasteFactor))
	if est.BinsWithWaste < est.BinsNeededMin {
		est.BinsWithWaste = est.BinsNeededMin
	}
	return est
}
