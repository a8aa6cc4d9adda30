package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/document"
	"github.com/grindlemire/go-grid/internal/preview"
)

// Space taken by the rounded frame and title line.
const (
	frameWidth  = 2
	frameHeight = 3
)

func runPreview(args []string, stdout io.Writer) error {
	defW, defH := terminalSize()

	flags := pflag.NewFlagSet("preview", pflag.ContinueOnError)
	width := flags.IntP("width", "w", defW, "preview width in cells")
	height := flags.IntP("height", "h", defH, "preview height in cells")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("preview requires exactly one file")
	}

	path := flags.Arg(0)
	root, err := document.Load(path)
	if err != nil {
		return err
	}

	w := max(1, *width-frameWidth)
	h := max(1, *height-frameHeight)
	if err := grid.Calculate(root, w, h); err != nil {
		return err
	}

	fmt.Fprintln(stdout, preview.Frame(path, preview.Render(root, w, h, preview.Options{})))
	return nil
}

// terminalSize returns the size of the terminal on stdout, or 80x24 when
// stdout is not a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth, defaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}
	return width, height
}
