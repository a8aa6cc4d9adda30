package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-grid/internal/layout"
)

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this element.
func (e *Element) LayoutStyle() LayoutStyle {
	return e.style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// IsDirty returns whether this element needs layout recalculation.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// SetDirty marks this element as needing recalculation or not.
func (e *Element) SetDirty(dirty bool) {
	e.dirty = dirty
}

// IntrinsicSize returns the natural content-based dimensions of this element.
// Text is measured in terminal cells, one row per line. Containers report
// the content size of their tracks.
func (e *Element) IntrinsicSize() (width, height int) {
	if len(e.children) > 0 {
		return layout.Measure(e)
	}
	if e.text == "" {
		return e.style.Padding.Horizontal(), e.style.Padding.Vertical()
	}

	lines := strings.Split(e.text, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width + e.style.Padding.Horizontal(), len(lines) + e.style.Padding.Vertical()
}

// Rect returns the border box computed by the last layout pass.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the content area computed by the last layout pass.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}
