package document

import (
	"fmt"

	grid "github.com/grindlemire/go-grid"
)

// Node is one element of a grid document.
// Definition strings are pointers so that an absent field leaves the axis
// undefined while "" still yields one auto track.
type Node struct {
	Name              string  `yaml:"name" json:"name"`
	Text              string  `yaml:"text" json:"text"`
	Row               int     `yaml:"row" json:"row"`
	Column            int     `yaml:"column" json:"column"`
	RowSpan           int     `yaml:"row_span" json:"row_span"`
	ColumnSpan        int     `yaml:"column_span" json:"column_span"`
	RowDefinitions    *string `yaml:"row_definitions" json:"row_definitions"`
	ColumnDefinitions *string `yaml:"column_definitions" json:"column_definitions"`
	AutoGrid          bool    `yaml:"auto_grid" json:"auto_grid"`
	Width             int     `yaml:"width" json:"width"`
	Height            int     `yaml:"height" json:"height"`
	Padding           int     `yaml:"padding" json:"padding"`
	RowGap            int     `yaml:"row_gap" json:"row_gap"`
	ColumnGap         int     `yaml:"column_gap" json:"column_gap"`
	Children          []*Node `yaml:"children" json:"children"`
}

// Validate checks n and its descendants for values the layout cannot use.
// Errors name the offending node by its path, e.g. "root.children[2]".
func Validate(n *Node) error {
	return validate(n, "root")
}

func validate(n *Node, path string) error {
	if n == nil {
		return fmt.Errorf("%s: empty element", path)
	}

	checks := []struct {
		field string
		value int
	}{
		{"row", n.Row},
		{"column", n.Column},
		{"row_span", n.RowSpan},
		{"column_span", n.ColumnSpan},
		{"width", n.Width},
		{"height", n.Height},
		{"padding", n.Padding},
		{"row_gap", n.RowGap},
		{"column_gap", n.ColumnGap},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%s: %s must not be negative, got %d", path, c.field, c.value)
		}
	}

	for i, child := range n.Children {
		if err := validate(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Build converts n into an element tree. Definition strings go through
// the definition parser, so malformed tokens become auto tracks.
// Build expects a validated node.
func Build(n *Node) *grid.Element {
	opts := []grid.Option{
		grid.WithName(n.Name),
		grid.WithText(n.Text),
		grid.WithRow(n.Row),
		grid.WithColumn(n.Column),
		grid.WithPadding(n.Padding),
		grid.WithRowGap(n.RowGap),
		grid.WithColumnGap(n.ColumnGap),
	}
	if n.RowSpan > 0 {
		opts = append(opts, grid.WithRowSpan(n.RowSpan))
	}
	if n.ColumnSpan > 0 {
		opts = append(opts, grid.WithColumnSpan(n.ColumnSpan))
	}
	if n.Width > 0 {
		opts = append(opts, grid.WithWidth(n.Width))
	}
	if n.Height > 0 {
		opts = append(opts, grid.WithHeight(n.Height))
	}
	if n.RowDefinitions != nil {
		opts = append(opts, grid.WithRowDefinitions(*n.RowDefinitions))
	}
	if n.ColumnDefinitions != nil {
		opts = append(opts, grid.WithColumnDefinitions(*n.ColumnDefinitions))
	}
	if n.AutoGrid {
		opts = append(opts, grid.WithAutoGrid(true))
	}

	children := make([]*grid.Element, len(n.Children))
	for i, child := range n.Children {
		children[i] = Build(child)
	}
	opts = append(opts, grid.WithChildren(children...))

	return grid.New(opts...)
}
