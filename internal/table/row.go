package table

import "fmt"

// Row is one logical row of a table: an ordered list of cells already
// converted to their display text.
type Row struct {
	cells []string
}

// NewRow returns a row holding the display text of values.
func NewRow(values ...any) Row {
	var r Row
	for _, v := range values {
		r.Push(v)
	}
	return r
}

// Push appends a cell. Values are converted with fmt.Sprint, so anything
// implementing fmt.Stringer displays through its String method.
func (r *Row) Push(v any) {
	r.cells = append(r.cells, fmt.Sprint(v))
}

// Cells returns the display text of each cell.
func (r Row) Cells() []string {
	return r.cells
}

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r.cells)
}
