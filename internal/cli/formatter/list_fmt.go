package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// BoxSummary is one stored root box as shown by the list view.
type BoxSummary struct {
	Record   *domain.NodeRecord
	Children int
}

// FormatBoxList renders stored root boxes as an aligned table.
func FormatBoxList(boxes []BoxSummary, now time.Time) string {
	if len(boxes) == 0 {
		return Dim("No boxes stored yet. Try 'parcel demo --save'.") + "\n"
	}

	headers := []string{"ID", "LABEL", "ITEMS", "CREATED"}
	rows := make([][]string, 0, len(boxes))
	for _, bx := range boxes {
		rows = append(rows, []string{
			TruncID(bx.Record.ID),
			bx.Record.Title(),
			fmt.Sprintf("%d", bx.Children),
			HumanDateFrom(bx.Record.CreatedAt, now),
		})
	}
	return Header("Boxes") + "\n" + RenderTable(headers, rows)
}

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest visible cell, ANSI sequences excluded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	const colGap = 2
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				pad := widths[i] - lipgloss.Width(cell)
				b.WriteString(strings.Repeat(" ", max(pad, 0)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, Dim)

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
