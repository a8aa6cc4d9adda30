package grid

// AddChild appends children to this Element. Child order is reading order
// for auto-placement.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
	e.MarkDirty()
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk calls fn for e and every descendant in pre-order. Children added
// by fn to the element it is visiting are visited too. Walk stops at the
// first error.
func (e *Element) Walk(fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	for i := 0; i < len(e.children); i++ {
		if err := e.children[i].Walk(fn); err != nil {
			return err
		}
	}
	return nil
}
