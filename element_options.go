package grid

// Option configures an Element.
type Option func(*Element)

// --- Grid Container Options ---

// WithRowDefinitions sets the row-definitions property, e.g. "auto,*,2*".
func WithRowDefinitions(s string) Option {
	return func(e *Element) {
		e.props.SetRowDefinitions(s)
	}
}

// WithColumnDefinitions sets the column-definitions property.
func WithColumnDefinitions(s string) Option {
	return func(e *Element) {
		e.props.SetColumnDefinitions(s)
	}
}

// WithRows sets row tracks directly, bypassing the definition string.
func WithRows(defs ...Value) Option {
	return func(e *Element) {
		e.style.Rows = append([]Value(nil), defs...)
	}
}

// WithColumns sets column tracks directly, bypassing the definition string.
func WithColumns(defs ...Value) Option {
	return func(e *Element) {
		e.style.Columns = append([]Value(nil), defs...)
	}
}

// WithAutoGrid sets the auto-grid property. When true, children at (0,0)
// are assigned cells in reading order the first time the element is ready.
func WithAutoGrid(enabled bool) Option {
	return func(e *Element) {
		e.props.SetAutoGrid(enabled)
	}
}

// WithRowGap sets the space between rows.
func WithRowGap(cells int) Option {
	return func(e *Element) {
		e.style.RowGap = cells
	}
}

// WithColumnGap sets the space between columns.
func WithColumnGap(cells int) Option {
	return func(e *Element) {
		e.style.ColumnGap = cells
	}
}

// --- Grid Item Options ---

// WithRow sets the zero-based row of this element in its parent.
func WithRow(row int) Option {
	return func(e *Element) {
		e.style.Cell.Row = row
	}
}

// WithColumn sets the zero-based column of this element in its parent.
func WithColumn(column int) Option {
	return func(e *Element) {
		e.style.Cell.Column = column
	}
}

// WithRowSpan sets how many rows this element covers.
func WithRowSpan(span int) Option {
	return func(e *Element) {
		e.style.Cell.RowSpan = span
	}
}

// WithColumnSpan sets how many columns this element covers.
func WithColumnSpan(span int) Option {
	return func(e *Element) {
		e.style.Cell.ColumnSpan = span
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(cells)
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(cells int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeAll(cells)
	}
}

// --- Content Options ---

// WithName sets the name reported in diagnostics and previews.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// WithText sets the text content. Multi-line text is measured one row per line.
func WithText(content string) Option {
	return func(e *Element) {
		e.text = content
	}
}

// WithChildren appends children in order.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}
