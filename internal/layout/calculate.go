package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Only dirty nodes, or nodes whose allocated area changed, are recalculated.
//
// availableWidth and availableHeight specify the root constraint
// (typically the terminal size).
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}
	calculateNode(root, NewRect(0, 0, availableWidth, availableHeight))
}

// Measure returns the natural size of node. Leaves report their
// IntrinsicSize; containers report the content size of their tracks
// plus padding.
func Measure(node Layoutable) (width, height int) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		return node.IntrinsicSize()
	}

	style := node.LayoutStyle()
	rows := implicitTracks(style.Rows)
	columns := implicitTracks(style.Columns)
	rowItems, columnItems := collectItems(children, len(rows), len(columns))

	width = contentExtent(columns, columnItems, style.ColumnGap) + style.Padding.Horizontal()
	height = contentExtent(rows, rowItems, style.RowGap) + style.Padding.Vertical()
	return width, height
}

// calculateNode computes the layout for a single node within the available space.
// The available rect is the cell area allocated by the parent, already
// shrunk by this node's margin.
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	// 1. Compute this node's border box within available space
	borderBox := computeBorderBox(style, available)

	// A clean node laid out in the same box has a clean subtree
	if !node.IsDirty() && node.GetLayout().Rect == borderBox {
		return
	}

	// 2. Compute content rect (border box minus padding)
	contentRect := borderBox.Inset(style.Padding)

	// 3. Layout children on the grid within the content rect
	if len(node.LayoutChildren()) > 0 {
		layoutGrid(node, contentRect)
	}

	// 4. Store computed layout
	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})

	// 5. Clear dirty flag
	node.SetDirty(false)
}

// layoutGrid resolves the row and column tracks of node and positions every
// child in the cells it covers. Children sharing a cell overlap.
func layoutGrid(node Layoutable, contentRect Rect) {
	style := node.LayoutStyle()
	children := node.LayoutChildren()

	rowDefs := implicitTracks(style.Rows)
	columnDefs := implicitTracks(style.Columns)
	rowItems, columnItems := collectItems(children, len(rowDefs), len(columnDefs))

	rows := resolveTracks(rowDefs, rowItems, contentRect.Height, style.RowGap)
	columns := resolveTracks(columnDefs, columnItems, contentRect.Width, style.ColumnGap)

	for i, child := range children {
		r, c := rowItems[i], columnItems[i]
		slot := Rect{
			X:      contentRect.X + columns[c.index].offset,
			Y:      contentRect.Y + rows[r.index].offset,
			Width:  extent(columns, c.index, c.span, style.ColumnGap),
			Height: extent(rows, r.index, r.span, style.RowGap),
		}

		// The child receives its slot minus margin and does NOT re-apply margin.
		calculateNode(child, slot.Inset(child.LayoutStyle().Margin))
	}
}

// collectItems measures each child and clamps its cell to the track counts.
func collectItems(children []Layoutable, rowCount, columnCount int) (rows, columns []trackItem) {
	rows = make([]trackItem, len(children))
	columns = make([]trackItem, len(children))

	for i, child := range children {
		style := child.LayoutStyle()
		width, height := outerSize(child, style)

		r, rs := clampSpan(style.Cell.Row, style.Cell.RowSpan, rowCount)
		c, cs := clampSpan(style.Cell.Column, style.Cell.ColumnSpan, columnCount)
		rows[i] = trackItem{index: r, span: rs, content: height}
		columns[i] = trackItem{index: c, span: cs, content: width}
	}
	return rows, columns
}

// outerSize returns the size a child asks for, margin included.
// Fixed dimensions win over the intrinsic size.
func outerSize(child Layoutable, style Style) (width, height int) {
	width, height = child.IntrinsicSize()
	if style.Width.Unit == UnitFixed {
		width = int(style.Width.Amount)
	}
	if style.Height.Unit == UnitFixed {
		height = int(style.Height.Amount)
	}
	width = max(width, style.MinWidth.Resolve(0, 0))
	height = max(height, style.MinHeight.Resolve(0, 0))
	return width + style.Margin.Horizontal(), height + style.Margin.Vertical()
}

// computeBorderBox calculates the border box dimensions for a node.
// Auto and star sizes fill the available rect; fixed and percent sizes are
// resolved against it and anchored at its top-left corner. Min/max
// constraints apply last.
func computeBorderBox(style Style, available Rect) Rect {
	width := style.Width.Resolve(available.Width, available.Width)
	height := style.Height.Resolve(available.Height, available.Height)

	// Apply min/max width constraints
	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, width)
	width = clamp(width, minWidth, maxWidth)

	// Apply min/max height constraints
	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, height)
	height = clamp(height, minHeight, maxHeight)

	// Clamp to non-negative
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  width,
		Height: height,
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
