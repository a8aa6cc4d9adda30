package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Calculate lays out the tree rooted at root within width x height cells,
// then delivers the ready signal to every element that has not received
// it yet, parents before children. When ready handlers change the tree
// (auto-grid assigning cells, for example), the tree is laid out again.
//
// The first ready handler error stops the pass and is returned; elements
// after it in pre-order stay not ready.
func Calculate(root *Element, width, height int) error {
	if root == nil {
		return nil
	}

	layout.Calculate(root, width, height)

	err := root.Walk(func(e *Element) error {
		return e.NotifyReady()
	})
	if err != nil {
		return err
	}

	if root.IsDirty() {
		layout.Calculate(root, width, height)
	}
	return nil
}
