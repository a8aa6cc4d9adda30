package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/document"
)

func runLayout(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("layout", pflag.ContinueOnError)
	width := flags.IntP("width", "w", defaultWidth, "layout width in cells")
	height := flags.IntP("height", "h", defaultHeight, "layout height in cells")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("layout requires exactly one file")
	}

	root, err := document.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	if err := grid.Calculate(root, *width, *height); err != nil {
		return err
	}

	writeLayout(stdout, root)
	return nil
}

// writeLayout prints one line per element, indented by depth, with its
// rect, its cell in the parent, and the tracks of containers.
func writeLayout(w io.Writer, root *grid.Element) {
	var write func(e *grid.Element, depth int)
	write = func(e *grid.Element, depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(e))
		for _, child := range e.Children() {
			write(child, depth+1)
		}
	}
	write(root, 0)
}

func describe(e *grid.Element) string {
	var b strings.Builder

	name := e.Name()
	if name == "" {
		name = "-"
	}
	r := e.Rect()
	fmt.Fprintf(&b, "%s [%d,%d %dx%d]", name, r.X, r.Y, r.Width, r.Height)

	if e.Parent() != nil {
		cell := e.Cell()
		fmt.Fprintf(&b, " cell=%d,%d", cell.Row, cell.Column)
		if cell.RowSpan > 1 || cell.ColumnSpan > 1 {
			fmt.Fprintf(&b, " span=%dx%d", cell.RowSpan, cell.ColumnSpan)
		}
	}

	if len(e.Children()) > 0 {
		if rows := e.RowDefinitions(); len(rows) > 0 {
			fmt.Fprintf(&b, " rows=%q", grid.FormatDefinitions(rows))
		}
		if columns := e.ColumnDefinitions(); len(columns) > 0 {
			fmt.Fprintf(&b, " columns=%q", grid.FormatDefinitions(columns))
		}
	}
	if e.AutoGrid() {
		b.WriteString(" auto")
	}
	return b.String()
}
