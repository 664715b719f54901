package format

import (
	"strings"
)

// Align specifies text alignment within a column
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TableOpts configures table rendering
type TableOpts struct {
	ColWidths       []int    // Fixed widths per column, 0 = auto
	ColAligns       []Align  // Alignment per column, default AlignLeft
	ColSeparator    string   // Between columns, empty = two spaces
	HeaderSeparator LineType // Line under the header row
	MaxWidth        int      // Proportionally shrink columns to fit, 0 = unlimited
}

// DefaultTableOpts returns sensible defaults.
func DefaultTableOpts() TableOpts {
	return TableOpts{
		ColSeparator:    "  ",
		HeaderSeparator: LineSingle,
	}
}

// columnWidths computes per-column widths for the given data, respecting
// fixed widths and proportionally shrinking to fit opts.MaxWidth.
func columnWidths(headers []string, rows [][]string, opts TableOpts) []int {
	cols := len(headers)
	widths := make([]int, cols)

	for i, h := range headers {
		widths[i] = stringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := stringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := 0; i < cols && i < len(opts.ColWidths); i++ {
		if opts.ColWidths[i] > 0 {
			widths[i] = opts.ColWidths[i]
		}
	}

	if opts.MaxWidth > 0 {
		sepW := stringWidth(opts.ColSeparator) * (cols - 1)
		total := sepW
		for _, w := range widths {
			total += w
		}
		if total > opts.MaxWidth && opts.MaxWidth > cols+sepW {
			contentW := opts.MaxWidth - sepW
			scale := float64(contentW) / float64(total-sepW)
			for i := range widths {
				widths[i] = int(float64(widths[i]) * scale)
				if widths[i] < 1 {
					widths[i] = 1
				}
			}
		}
	}

	return widths
}

// Table lays out headers and rows into aligned columns with a separator
// line under the header. Cells wider than their column are truncated with
// an ellipsis.
func Table(headers []string, rows [][]string, opts TableOpts) string {
	if len(headers) == 0 {
		return ""
	}
	if opts.ColSeparator == "" {
		opts.ColSeparator = "  "
	}

	widths := columnWidths(headers, rows, opts)

	var b strings.Builder
	writeRow(&b, headers, widths, opts)
	b.WriteByte('\n')

	if opts.HeaderSeparator < LineType(len(boxChars)) {
		h := boxChars[opts.HeaderSeparator][boxH]
		total := stringWidth(opts.ColSeparator) * (len(widths) - 1)
		for _, w := range widths {
			total += w
		}
		b.WriteString(strings.Repeat(string(h), total))
		b.WriteByte('\n')
	}

	for i, row := range rows {
		writeRow(&b, row, widths, opts)
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, opts TableOpts) {
	for i, w := range widths {
		if i > 0 {
			b.WriteString(opts.ColSeparator)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if stringWidth(cell) > w {
			cell = Truncate(cell, w)
		}

		align := AlignLeft
		if i < len(opts.ColAligns) {
			align = opts.ColAligns[i]
		}
		switch align {
		case AlignRight:
			b.WriteString(PadLeft(cell, w))
		case AlignCenter:
			pad := w - stringWidth(cell)
			b.WriteString(strings.Repeat(" ", pad/2))
			b.WriteString(PadRight(cell, w-pad/2))
		default:
			b.WriteString(PadRight(cell, w))
		}
	}
}
