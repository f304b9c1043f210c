package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/erichgess/tisk/internal/textfmt"
)

// DefaultSplitLimit is the split limit used to wrap cells unless changed
// with WithSplitLimit.
const DefaultSplitLimit = 7

// Column describes one table column. A Width of zero marks the column as
// auto-sized.
type Column struct {
	Label string
	Width int
}

// Table lays out rows in columns whose widths are fixed when the table is
// created. A Table is immutable and safe for concurrent use.
type Table struct {
	total      int
	columns    []Column
	widths     []int
	splitLimit int
}

// New configures a table totalWidth characters wide.
//
// Every auto-sized column gets (totalWidth - Σ(width+1)) / n characters,
// where the sum runs over the sized columns and n is the number of
// auto-sized columns. New returns a *ConfigError when the sized columns do
// not fit in totalWidth, when a width is negative, when columns is empty,
// or when an auto-sized column would be narrower than one character.
func New(totalWidth int, columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, configErrorf("columns", "at least one column is required")
	}

	allocated, auto := 0, 0
	for _, c := range columns {
		switch {
		case c.Width < 0:
			return nil, configErrorf(c.Label, "width %d is negative", c.Width)
		case c.Width == 0:
			auto++
		default:
			allocated += c.Width + 1
		}
	}
	if allocated > totalWidth {
		return nil, configErrorf("width", "columns need %d characters but the table is %d wide", allocated, totalWidth)
	}

	shared := 0
	if auto > 0 {
		shared = (totalWidth - allocated) / auto
		if shared < 1 {
			return nil, configErrorf("width", "no space left for %d auto-sized columns in a table %d wide", auto, totalWidth)
		}
	}

	t := &Table{
		total:      totalWidth,
		columns:    append([]Column(nil), columns...),
		widths:     make([]int, len(columns)),
		splitLimit: DefaultSplitLimit,
	}
	for i, c := range columns {
		if c.Width == 0 {
			t.widths[i] = shared
		} else {
			t.widths[i] = c.Width
		}
	}
	return t, nil
}

// WithSplitLimit returns a copy of t that wraps cells with the given split
// limit.
func (t *Table) WithSplitLimit(n int) *Table {
	c := *t
	c.splitLimit = n
	return &c
}

// Widths returns the computed width of each column.
func (t *Table) Widths() []int {
	return append([]int(nil), t.widths...)
}

// Columns returns the columns as configured.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Header returns the column labels padded to their widths and separated by
// one space, followed by a newline.
func (t *Table) Header() string {
	return t.HeaderFunc(nil)
}

// HeaderFunc is Header with style applied to each label. Padding is
// computed from the unstyled label, so style may add escape sequences.
func (t *Table) HeaderFunc(style func(string) string) string {
	var sb strings.Builder
	for i, c := range t.columns {
		if i > 0 {
			sb.WriteByte(' ')
		}
		label := c.Label
		if style != nil {
			label = style(label)
		}
		sb.WriteString(label)
		if pad := t.widths[i] - utf8.RuneCountInString(c.Label); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Row renders row as one or more physical lines, each ending in a newline.
// Cells missing from the end of row render blank.
func (t *Table) Row(row Row) (string, error) {
	cells := row.Cells()
	if len(cells) > len(t.columns) {
		return "", fmt.Errorf("%w: %d cells for %d columns", ErrTooManyCells, len(cells), len(t.columns))
	}

	wrapped := make([][]textfmt.Segment, len(t.columns))
	height := 1
	for i, cell := range cells {
		segs, err := textfmt.FormatToColumn(cell, t.widths[i], t.splitLimit)
		if err != nil {
			return "", &ConfigError{Field: t.columns[i].Label, Reason: "cannot wrap cell", Err: err}
		}
		wrapped[i] = segs
		height = max(height, len(segs))
	}

	var sb strings.Builder
	for line := 0; line < height; line++ {
		for i, segs := range wrapped {
			if i > 0 {
				sb.WriteByte(' ')
			}
			text := ""
			if line < len(segs) {
				text = segs[line].Render()
			}
			fmt.Fprintf(&sb, "%-*s", t.widths[i], text)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Render writes the header followed by every row to w.
func (t *Table) Render(w io.Writer, rows []Row) error {
	if _, err := io.WriteString(w, t.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		s, err := t.Row(row)
		if err != nil {
			return fmt.Errorf("failed to render row %d: %w", i, err)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return nil
}
