package grid

// SetStyle updates the layout style and marks the element dirty.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
	e.MarkDirty()
}

// Style returns the current layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// --- Definitions API ---

// SetRowDefinitions assigns the row-definitions property, replacing
// every row definition with the parsed string.
func (e *Element) SetRowDefinitions(s string) {
	e.props.SetRowDefinitions(s)
}

// SetColumnDefinitions assigns the column-definitions property, replacing
// every column definition with the parsed string.
func (e *Element) SetColumnDefinitions(s string) {
	e.props.SetColumnDefinitions(s)
}

// RowDefinitions returns a copy of the current row definitions.
func (e *Element) RowDefinitions() []Value {
	return append([]Value(nil), e.style.Rows...)
}

// ColumnDefinitions returns a copy of the current column definitions.
func (e *Element) ColumnDefinitions() []Value {
	return append([]Value(nil), e.style.Columns...)
}

// Definitions returns a copy of the definitions of axis.
func (e *Element) Definitions(axis Axis) []Value {
	if axis == AxisColumn {
		return e.ColumnDefinitions()
	}
	return e.RowDefinitions()
}

// AddDefinition appends one definition to axis.
func (e *Element) AddDefinition(axis Axis, v Value) {
	if axis == AxisColumn {
		e.style.Columns = append(e.style.Columns, v)
	} else {
		e.style.Rows = append(e.style.Rows, v)
	}
	e.MarkDirty()
}

// SetAutoGrid assigns the auto-grid property.
func (e *Element) SetAutoGrid(enabled bool) {
	e.props.SetAutoGrid(enabled)
}

// AutoGrid reports whether auto-grid is enabled.
func (e *Element) AutoGrid() bool {
	return e.props.AutoGrid()
}

// --- Cell API ---

// Row returns the zero-based row of this element in its parent.
func (e *Element) Row() int {
	return e.style.Cell.Row
}

// Column returns the zero-based column of this element in its parent.
func (e *Element) Column() int {
	return e.style.Cell.Column
}

// Cell returns the full grid position of this element.
func (e *Element) Cell() Cell {
	return e.style.Cell
}

// SetCell moves this element to row and column.
func (e *Element) SetCell(row, column int) {
	e.style.Cell.Row = row
	e.style.Cell.Column = column
	e.MarkDirty()
}

// SetSpan sets how many rows and columns this element covers.
func (e *Element) SetSpan(rows, columns int) {
	e.style.Cell.RowSpan = rows
	e.style.Cell.ColumnSpan = columns
	e.MarkDirty()
}

// --- Text API ---

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the text content.
func (e *Element) SetText(content string) {
	e.text = content
	e.MarkDirty()
}
