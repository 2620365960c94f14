package markdown

import (
	"regexp"
	"strings"
)

// alignment of a table column, derived from the separator row.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// minColumnWidth keeps degenerate columns wide enough to draw a
// non-collapsed box.
const minColumnWidth = 3

// isTableLine reports whether a line belongs to a pipe table: after
// trimming it starts and ends with '|' and contains at least two pipes.
func isTableLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "|") &&
		strings.HasSuffix(t, "|") &&
		strings.Count(t, "|") >= 2
}

// splitCells parses one table line into trimmed cell values. The outer
// pipes are dropped and the rest is split on '|'; a literal pipe cannot
// appear inside a cell.
func splitCells(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	cells := strings.Split(t, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// isSeparator reports whether a row of cells is a header separator.
// Cells that are empty after trimming are ignored; every remaining
// cell must be dashes with optional alignment colons.
func isSeparator(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return true
}

// cellAlignment derives a column alignment from one separator cell.
func cellAlignment(cell string) alignment {
	leading := strings.HasPrefix(cell, ":")
	trailing := strings.HasSuffix(cell, ":")
	switch {
	case leading && trailing:
		return alignCenter
	case trailing:
		return alignRight
	default:
		return alignLeft
	}
}

// tableSpec is a parsed pipe table before layout.
type tableSpec struct {
	header []string
	aligns []alignment
	rows   [][]string
}

// parseTable builds a tableSpec from a run of table lines. Runs
// shorter than two lines are not renderable and are rejected; the
// caller falls back to prose rendering for them.
func parseTable(lines []string) (tableSpec, bool) {
	if len(lines) < 2 {
		return tableSpec{}, false
	}

	spec := tableSpec{header: splitCells(lines[0])}

	rest := lines[1:]
	if sep := splitCells(lines[1]); isSeparator(sep) {
		spec.aligns = make([]alignment, len(sep))
		for i, c := range sep {
			spec.aligns[i] = cellAlignment(c)
		}
		rest = lines[2:]
	}
	for _, line := range rest {
		spec.rows = append(spec.rows, splitCells(line))
	}

	spec.reconcile()
	return spec, true
}

// reconcile pads the header, alignments, and every data row out to the
// widest row so layout can index columns uniformly. Missing alignments
// default to left.
func (t *tableSpec) reconcile() {
	cols := len(t.header)
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	t.header = padCells(t.header, cols)
	for i, row := range t.rows {
		t.rows[i] = padCells(row, cols)
	}
	for len(t.aligns) < cols {
		t.aligns = append(t.aligns, alignLeft)
	}
	t.aligns = t.aligns[:cols]
}

func padCells(cells []string, n int) []string {
	for len(cells) < n {
		cells = append(cells, "")
	}
	return cells
}

// widths computes per-column display widths: the widest cell in the
// column by the estimator, floored at minColumnWidth.
func (t *tableSpec) widths(estimate func(string) int) []int {
	ws := make([]int, len(t.header))
	for i := range ws {
		ws[i] = minColumnWidth
	}
	measure := func(cells []string) {
		for i, c := range cells {
			if w := estimate(c); w > ws[i] {
				ws[i] = w
			}
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return ws
}

// format renders the table as monospaced box-drawing text terminated
// by a blank line. Every rendered row, borders included, is
// sum(width+3)+1 characters wide. An empty table renders as nothing.
func (t tableSpec) format(estimate func(string) int) string {
	if len(t.header) == 0 {
		return ""
	}
	ws := t.widths(estimate)

	var b strings.Builder
	writeBorder(&b, ws, "┌", "┬", "┐")
	writeRow(&b, t.header, t.aligns, ws, estimate)
	writeBorder(&b, ws, "├", "┼", "┤")
	for _, row := range t.rows {
		writeRow(&b, row, t.aligns, ws, estimate)
	}
	writeBorder(&b, ws, "└", "┴", "┘")
	b.WriteString("\n")
	return b.String()
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string, aligns []alignment, widths []int, estimate func(string) int) {
	b.WriteString("│")
	for i, w := range widths {
		b.WriteString(" ")
		b.WriteString(padText(cells[i], w, aligns[i], estimate))
		b.WriteString(" │")
	}
	b.WriteString("\n")
}

// padText pads cell text out to width columns using the column's
// alignment. Center splits the padding with the odd space on the right.
func padText(s string, width int, align alignment, estimate func(string) int) string {
	pad := width - estimate(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
