package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tourlab/tsp"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(11)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printField prints an indented "key value" line.
func printField(w io.Writer, key string, value any) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+fmt.Sprint(value))
}

func formatCost(c float64) string {
	return styleNumber.Render(strconv.FormatFloat(c, 'f', 3, 64))
}

// formatRoute renders ids as "0 → 3 → 4 → 0", eliding the middle of long routes.
func formatRoute(r tsp.Route) string {
	const keep = 8
	ids := r.IDs()
	parts := make([]string, 0, min(len(ids), 2*keep+1))
	if len(ids) > 2*keep+1 {
		for _, id := range ids[:keep] {
			parts = append(parts, strconv.Itoa(id))
		}
		parts = append(parts, styleDim.Render(fmt.Sprintf("… %d more …", len(ids)-2*keep)))
		ids = ids[len(ids)-keep:]
	}
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}

	return strings.Join(parts, " "+iconArrow+" ")
}
