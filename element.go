package grid

import "github.com/grindlemire/go-grid/internal/debug"

// Element is a grid container and grid item.
// It implements Layoutable and owns its children directly.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout properties. style.Rows and style.Columns hold the
	// materialized row and column definitions.
	style  LayoutStyle
	layout LayoutResult
	dirty  bool

	// Identification and content
	name string
	text string

	// Attached grid properties and the observer that applies them
	props Properties

	// One-shot lifecycle signal
	ready readySignal

	// Pending auto-grid subscription (nil when none)
	cancelAutoGrid func()
}

// Compile-time check that Element implements Layoutable
var _ Layoutable = (*Element)(nil)

// New creates a new Element with the given options.
// By default, an Element fills the cell it is placed in and lays out its
// children on a single Star(1) row and column.
func New(opts ...Option) *Element {
	e := &Element{
		style: DefaultLayoutStyle(),
		dirty: true,
	}
	e.props.Observe(e.onPropertyChanged)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Properties returns the attached grid properties of e. Assigning through
// them has the same effect as the corresponding Element setters.
func (e *Element) Properties() *Properties {
	return &e.props
}

// onPropertyChanged materializes attached property assignments.
func (e *Element) onPropertyChanged(c Change) {
	switch c.Property {
	case PropRowDefinitions:
		e.applyDefinitions(AxisRow, c.New.(string))
	case PropColumnDefinitions:
		e.applyDefinitions(AxisColumn, c.New.(string))
	case PropAutoGrid:
		e.setAutoGrid(c.New.(bool))
	}
}

// applyDefinitions replaces the definitions of one axis with the parsed
// definition string. The other axis is untouched.
func (e *Element) applyDefinitions(axis Axis, s string) {
	defs := ParseDefinitions(s)
	if axis == AxisRow {
		e.style.Rows = defs
	} else {
		e.style.Columns = defs
	}
	debug.Log("definitions applied", "element", e.name, "axis", axis, "input", s, "count", len(defs))
	e.MarkDirty()
}

// setAutoGrid subscribes or cancels the one-shot auto-placement.
func (e *Element) setAutoGrid(enabled bool) {
	if !enabled {
		if e.cancelAutoGrid != nil {
			e.cancelAutoGrid()
			e.cancelAutoGrid = nil
		}
		return
	}

	if e.cancelAutoGrid != nil {
		return // Already pending
	}
	if e.ready.fired {
		debug.Log("auto-grid enabled after ready, ignored", "element", e.name)
		return
	}
	e.cancelAutoGrid = e.ready.subscribe(func() error {
		e.cancelAutoGrid = nil
		return e.autoPlace()
	})
}

// Name returns the element's name, used in diagnostics.
func (e *Element) Name() string {
	return e.name
}

// MarkDirty marks this element and all ancestors as needing layout.
func (e *Element) MarkDirty() {
	for node := e; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}
