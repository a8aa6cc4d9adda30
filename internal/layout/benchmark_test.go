package layout

import "testing"

// buildTree creates a tree with the specified branching factor and depth.
// Containers alternate between one row of star columns and one column of
// star rows, so every child gets its own track.
func buildTree(branching, depth int) *testNode {
	root := newTestNode(DefaultStyle())
	if depth > 0 {
		addChildrenRecursive(root, branching, depth-1, alongColumns)
	}
	return root
}

// axis selects which tracks addChildrenRecursive spreads children across.
type axis int

const (
	alongRows axis = iota
	alongColumns
)

func addChildrenRecursive(parent *testNode, branching, remainingDepth int, along axis) {
	for i := 0; i < branching; i++ {
		style := DefaultStyle()
		if along == alongColumns {
			parent.style.Columns = append(parent.style.Columns, Star(1))
			style.Cell.Column = i
		} else {
			parent.style.Rows = append(parent.style.Rows, Star(1))
			style.Cell.Row = i
		}

		child := newTestNode(style)
		parent.children = append(parent.children, child)

		if remainingDepth > 0 {
			addChildrenRecursive(child, branching, remainingDepth-1, 1-along)
		}
	}
}

// buildAutoGrid creates a container with n fixed-size children laid out
// in an auto-sized grid of the given column count.
func buildAutoGrid(n, columns int) *testNode {
	root := newTestNode(DefaultStyle())
	for c := 0; c < columns; c++ {
		root.style.Columns = append(root.style.Columns, Auto())
	}
	for r := 0; r < (n+columns-1)/columns; r++ {
		root.style.Rows = append(root.style.Rows, Auto())
	}
	for i := 0; i < n; i++ {
		root.children = append(root.children, leaf(i/columns, i%columns, 10, 1))
	}
	return root
}

// markAllDirty forces a full recalculation of the subtree at n.
func markAllDirty(n *testNode) {
	n.dirty = true
	for _, child := range n.children {
		markAllDirty(child)
	}
}

// countNodes counts the total number of nodes in a tree.
func countNodes(n *testNode) int {
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}

// BenchmarkCalculate_10Nodes benchmarks layout calculation with ~10 nodes.
// Tree structure: branching=3, depth=2 = 1 + 3 + 9 = 13 nodes
func BenchmarkCalculate_10Nodes(b *testing.B) {
	root := buildTree(3, 2)
	b.Logf("Node count: %d", countNodes(root))

	Calculate(root, 1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		markAllDirty(root)
		Calculate(root, 1000, 1000)
	}
}

// BenchmarkCalculate_100Nodes benchmarks layout calculation with ~100 nodes.
// Tree structure: branching=3, depth=4 = 1 + 3 + 9 + 27 + 81 = 121 nodes
func BenchmarkCalculate_100Nodes(b *testing.B) {
	root := buildTree(3, 4)
	b.Logf("Node count: %d", countNodes(root))

	Calculate(root, 1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		markAllDirty(root)
		Calculate(root, 1000, 1000)
	}
}

// BenchmarkCalculate_1000AutoCells benchmarks a flat grid of 1000 items
// whose auto tracks must be measured on every pass.
func BenchmarkCalculate_1000AutoCells(b *testing.B) {
	root := buildAutoGrid(1000, 10)

	Calculate(root, 10000, 1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		markAllDirty(root)
		Calculate(root, 10000, 1000)
	}
}

// BenchmarkCalculate_Incremental compares a full pass with one where only
// the root is dirty and every child keeps its slot.
func BenchmarkCalculate_Incremental(b *testing.B) {
	root := buildTree(3, 4)
	Calculate(root, 1000, 1000)

	b.Run("full", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			markAllDirty(root)
			Calculate(root, 1000, 1000)
		}
	})

	b.Run("root only", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			root.dirty = true
			Calculate(root, 1000, 1000)
		}
	})
}

func TestCalculate_CleanChildrenSkipped(t *testing.T) {
	root := buildTree(2, 2)
	Calculate(root, 100, 100)

	grandchild := root.children[0].children[0]
	grandchild.layout = Layout{}

	// Root dirty, children clean and in the same slots: subtrees are kept
	root.dirty = true
	Calculate(root, 100, 100)

	if grandchild.layout.Rect != (Rect{}) {
		t.Errorf("clean grandchild was recalculated: %+v", grandchild.layout.Rect)
	}
}
