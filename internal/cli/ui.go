package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/piwi3910/maxrects/internal/engine"
	"github.com/piwi3910/maxrects/internal/model"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func (c *CLI) printSuccess(format string, args ...any) {
	fmt.Fprintln(c.out, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (c *CLI) printWarning(format string, args ...any) {
	fmt.Fprintln(c.out, styleWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func (c *CLI) printFile(path string) {
	fmt.Fprintln(c.out, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func (c *CLI) printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(20)
	fmt.Fprintln(c.out, keyStyle.Render(key)+" "+styleValue.Render(value))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// printSummary prints the per-bin table followed by the totals.
func (c *CLI) printSummary(result model.PlacementResult) {
	t := newTable("Bin", "Size", "Boxes", "Free rects", "Used", "Efficiency")
	for _, b := range result.Bins {
		t.Row(
			strconv.Itoa(b.ID),
			fmt.Sprintf("%dx%d", b.Width, b.Height),
			strconv.Itoa(len(b.Placed)),
			strconv.Itoa(len(b.FreeRects)),
			fmt.Sprintf("%d/%d", b.UsedArea(), b.Area()),
			fmt.Sprintf("%.1f%%", b.Efficiency()),
		)
	}

	fmt.Fprintln(c.out, styleTitle.Render("Packing result"))
	fmt.Fprintln(c.out, t.Render())
	c.printKeyValue("Placed", strconv.Itoa(len(result.Placed)))
	c.printKeyValue("Missed", strconv.Itoa(len(result.Remaining)))
	c.printKeyValue("Bins used", fmt.Sprintf("%d of %d", result.BinsUsed(), len(result.Bins)))
	c.printKeyValue("Percentage Packed", fmt.Sprintf("%.2f%%", result.Efficiency()))

	if len(result.Remaining) > 0 {
		c.printWarning("%d box(es) fit no bin", len(result.Remaining))
	}
}

// printComparison prints one row per heuristic and marks the best.
func (c *CLI) printComparison(results []engine.ComparisonResult) {
	best := engine.Best(results)
	t := newTable("", "Heuristic", "Placed", "Missed", "Bins used", "Packed")
	for i, r := range results {
		mark := ""
		if i == best {
			mark = iconSuccess
		}
		t.Row(
			mark,
			string(r.Heuristic),
			strconv.Itoa(r.PlacedCount),
			strconv.Itoa(r.UnplacedCount),
			strconv.Itoa(r.BinsUsed),
			fmt.Sprintf("%.2f%%", r.Efficiency),
		)
	}

	fmt.Fprintln(c.out, styleTitle.Render("Heuristic comparison"))
	fmt.Fprintln(c.out, t.Render())
	if best >= 0 {
		c.printSuccess("best: %s", results[best].Heuristic)
	}
}
