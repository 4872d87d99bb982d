package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/panelgrid/pkg/layout"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleKey        = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleTableHead  = StyleTitle.Padding(0, 1)
	styleTableCell  = StyleNumber.Padding(0, 1)
	styleTableIndex = StyleValue.Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNewline prints an empty line.
func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}

// =============================================================================
// Layout Table
// =============================================================================

// printLayout prints a summary of l followed by one table row per panel.
func printLayout(w io.Writer, l layout.Layout) {
	printKeyValue(w, "grid", fmt.Sprintf("%d × %d (%s order)", l.Rows, l.Columns, l.Order))
	printKeyValue(w, "panel", fmt.Sprintf("%s × %s %s", num(l.PanelWidth), num(l.PanelHeight), l.Units))
	printKeyValue(w, "figure", fmt.Sprintf("%s × %s %s", num(l.FigWidth), num(l.FigHeight), l.Units))
	printKeyValue(w, "figsize", fmt.Sprintf("%s × %s in", num(l.FigSizeInches.Width), num(l.FigSizeInches.Height)))
	printKeyValue(w, "hsep", fmt.Sprint(l.HSep))
	printKeyValue(w, "vsep", fmt.Sprint(l.VSep))
	printKeyValue(w, "padding", fmt.Sprintf("left %s, right %s, top %s, bottom %s",
		num(l.Padding.Left), num(l.Padding.Right), num(l.Padding.Top), num(l.Padding.Bottom)))
	for _, d := range l.Diagnostics {
		printWarning(w, "%s", d.Message)
	}
	printNewline(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("row", "col", "x", "y", "width", "height").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHead
			case col < 2:
				return styleTableIndex
			}
			return styleTableCell
		})
	for _, p := range l.Panels {
		t.Row(
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Column),
			fmt.Sprintf("%.4f", p.X),
			fmt.Sprintf("%.4f", p.Y),
			fmt.Sprintf("%.4f", p.Width),
			fmt.Sprintf("%.4f", p.Height),
		)
	}
	fmt.Fprintln(w, t.Render())
}

// num formats a length with up to six significant digits.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
