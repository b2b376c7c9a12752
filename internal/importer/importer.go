// Package importer reads box and bin lists from CSV, Excel and DXF files.
// CSV input has its delimiter detected automatically, and headers are
// matched case-insensitively against a set of aliases.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/maxrects/internal/model"
)

// Item is one parsed row: a rectangle size repeated Quantity times.
type Item struct {
	Label    string
	Width    int
	Height   int
	Quantity int
	ID       int
	HasID    bool
}

// ImportResult collects the parsed rows together with row-level problems.
// A row with an error is skipped; the rest of the file is still imported.
type ImportResult struct {
	Items    []Item
	Errors   []string
	Warnings []string
}

// OK reports whether the import produced no errors.
func (r ImportResult) OK() bool {
	return len(r.Errors) == 0
}

// Boxes expands every item into Quantity boxes carrying the item label.
func (r ImportResult) Boxes() ([]model.Box, error) {
	var boxes []model.Box
	for _, it := range r.Items {
		for n := 0; n < it.Quantity; n++ {
			b, err := model.NewBox(it.Width, it.Height)
			if err != nil {
				return nil, err
			}
			b.Label = it.Label
			boxes = append(boxes, b)
		}
	}
	return boxes, nil
}

// Bins expands every item into Quantity empty bins. Rows with an explicit id
// use it for their first bin; all other bins are numbered sequentially from
// the highest id seen so far. Display offsets lay the bins out left to right
// with buffer pixels between them.
func (r ImportResult) Bins(buffer int) ([]model.Bin, error) {
	var bins []model.Bin
	nextID, x := 0, 0
	for _, it := range r.Items {
		for n := 0; n < it.Quantity; n++ {
			id := nextID
			if it.HasID && n == 0 {
				id = it.ID
			}
			b, err := model.NewBin(it.Width, it.Height, x, 0, id)
			if err != nil {
				return nil, err
			}
			b.Label = it.Label
			bins = append(bins, b)
			nextID = max(nextID, id+1)
			x += it.Width + buffer
		}
	}
	return bins, nil
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
	ID       int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "description", "desc", "item", "box", "bin"},
	"width":    {"width", "w", "length", "len", "x"},
	"height":   {"height", "h", "depth", "d", "y"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs"},
	"id":       {"id", "bin id", "bin_id", "number", "no"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter among comma,
// semicolon, tab and pipe. The delimiter that yields the most consistent
// multi-column rows wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping and true.
// When no cell matches a known alias it returns the positional mapping
// label, width, height, quantity, id and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1, ID: -1}
	slots := map[string]*int{
		"label":    &mapping.Label,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"quantity": &mapping.Quantity,
		"id":       &mapping.ID,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3, ID: 4}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseSide reads a positive integer side. Fractional values are rounded up
// so the box still covers the original shape; that case yields a warning.
func parseSide(s string) (int, bool, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return int(math.Ceil(f)), true, nil
}

// parseRow extracts an Item from a row. It returns the item, an error message
// and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (Item, string, []string) {
	var warnings []string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return Item{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, rounded, err := parseSide(widthStr)
	if err != nil {
		return Item{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}
	if rounded {
		warnings = append(warnings, fmt.Sprintf("%s: Width '%s' rounded up to %d", rowLabel, widthStr, width))
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return Item{}, fmt.Sprintf("%s: Missing height value", rowLabel), nil
	}
	height, rounded, err := parseSide(heightStr)
	if err != nil {
		return Item{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), nil
	}
	if rounded {
		warnings = append(warnings, fmt.Sprintf("%s: Height '%s' rounded up to %d", rowLabel, heightStr, height))
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return Item{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return Item{}, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel), nil
	}

	item := Item{Label: label, Width: width, Height: height, Quantity: qty}

	if idStr := getCell(row, mapping.ID); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Ignoring invalid id '%s'", rowLabel, idStr))
		} else {
			item.ID, item.HasID = id, true
		}
	}

	return item, "", warnings
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile picks the importer from the file extension: .csv, .txt, .tsv,
// .xlsx, .xlsm or .dxf.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".tsv":
		return ImportCSV(path)
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".dxf":
		return ImportDXF(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type '%s'", filepath.Ext(path))}}
	}
}

// ImportCSV imports items from a CSV file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports items from a reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports items from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognised header still has a non-numeric width cell.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		item, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Items = append(result.Items, item)
	}

	if len(result.Items) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
