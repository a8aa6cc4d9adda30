package grid

import "github.com/grindlemire/go-grid/internal/debug"

// autoPlace derives the missing axis from the child count and assigns
// every unpositioned child the next cell in row-major order.
//
// A child is unpositioned when its row and column are both 0. Positioned
// children are skipped and do not reserve their cell, so an auto-placed
// child may share a cell with one of them. Children placed before an
// overflow stay placed.
func (e *Element) autoPlace() error {
	rows := len(e.style.Rows)
	columns := len(e.style.Columns)
	count := len(e.children)

	switch {
	case rows == 0 && columns == 0:
		return &ConfigError{Element: e.name, Children: count, Err: ErrAxesUndefined}
	case rows == 0:
		rows = ceilDiv(count, columns)
		for range rows {
			e.style.Rows = append(e.style.Rows, Star(1))
		}
	case columns == 0:
		columns = ceilDiv(count, rows)
		for range columns {
			e.style.Columns = append(e.style.Columns, Star(1))
		}
	}
	e.MarkDirty()

	debug.Log("auto-grid", "element", e.name, "rows", rows, "columns", columns, "children", count)

	row, column := 0, 0
	for _, child := range e.children {
		if child.style.Cell.Row != 0 || child.style.Cell.Column != 0 {
			continue
		}
		if row >= rows {
			return &ConfigError{Element: e.name, Rows: rows, Columns: columns, Children: count, Err: ErrTooManyChildren}
		}

		child.SetCell(row, column)

		column++
		if column >= columns {
			column = 0
			row++
		}
	}
	return nil
}

// ceilDiv returns a/b rounded up for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
