package sim

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// Table renders the report as a fixed-width text table.
func (r *Report) Table() string {
	p := message.NewPrinter(lang)

	header := []string{"Level", "Board", "Runs", "Solved", "Win %", "Budget hit", "Moves", "Nodes (mean)", "Nodes (p50)", "Nodes (max)"}
	rows := make([][]string, 0, len(r.Levels))
	for _, l := range r.Levels {
		rows = append(rows, []string{
			p.Sprintf("%d", l.Level),
			l.Dims.String(),
			p.Sprintf("%d", l.Runs),
			p.Sprintf("%d", l.Solved),
			p.Sprintf("%.1f", 100*l.WinRate),
			p.Sprintf("%d", l.Exhausted),
			p.Sprintf("%.1f", l.MeanMoves),
			p.Sprintf("%.0f ± %.0f", l.MeanNodes, l.StdNodes),
			p.Sprintf("%.0f", l.MedianNodes),
			p.Sprintf("%.0f", l.MaxNodes),
		})
	}

	out := FormatTable(header, rows)
	out += p.Sprintf("used: %.2f seconds\n", r.Elapsed.Seconds())
	return out
}

// FormatTable lays out rows under header with ASCII borders. Column widths
// are measured in terminal cells.
func FormatTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var sb strings.Builder
	divider := func() {
		sb.WriteByte('+')
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	line := func(cells []string) {
		sb.WriteByte('|')
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
			sb.WriteString(blank(w - runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	divider()
	line(header)
	divider()
	for _, row := range rows {
		line(row)
	}
	divider()
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
