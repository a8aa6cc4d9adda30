package layout

// Cell is the grid position of an item inside its parent.
// Row and Column are zero-based; spans are at least 1.
type Cell struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Grid container properties
	Rows      []Value // Row tracks, top to bottom (empty = one Star(1) track)
	Columns   []Value // Column tracks, left to right (empty = one Star(1) track)
	RowGap    int     // Space between rows
	ColumnGap int     // Space between columns

	// Grid item properties
	Cell Cell

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Fixed(0),
		MinHeight: Fixed(0),
		MaxWidth:  Auto(), // No maximum
		MaxHeight: Auto(), // No maximum
		Cell:      Cell{RowSpan: 1, ColumnSpan: 1},
	}
}
