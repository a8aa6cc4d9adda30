// Package preview draws a laid-out grid element tree as box-drawn text.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
)

// wideTail marks the cell covered by the right half of a wide rune.
const wideTail = rune(-1)

// Options configures Render.
type Options struct {
	// Border supplies the box glyphs. The zero value uses lipgloss.NormalBorder().
	Border lipgloss.Border
}

// canvas is a fixed-size grid of terminal cells.
type canvas struct {
	cells  [][]rune
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([][]rune, c.height)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.width))
	}
	return c
}

func (c *canvas) bounds() grid.Rect {
	return grid.NewRect(0, 0, c.width, c.height)
}

func (c *canvas) set(x, y int, r rune) {
	if !c.bounds().Contains(x, y) {
		return
	}
	c.cells[y][x] = r
}

// text writes s starting at (x, y), clipped to limit cells.
func (c *canvas) text(x, y, limit int, s string) {
	s = runewidth.Truncate(s, limit, "")
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r)
		if w == 2 {
			c.set(x+1, y, wideTail)
		}
		x += w
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			if r != wideTail {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// box draws the outline of r with the border glyphs and blanks its interior.
func (c *canvas) box(r grid.Rect, b lipgloss.Border) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for y := r.Y + 1; y < bottom; y++ {
		for x := r.X + 1; x < right; x++ {
			c.set(x, y, ' ')
		}
	}
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, glyph(b.Top))
		c.set(x, bottom, glyph(b.Bottom))
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, glyph(b.Left))
		c.set(right, y, glyph(b.Right))
	}
	c.set(r.X, r.Y, glyph(b.TopLeft))
	c.set(right, r.Y, glyph(b.TopRight))
	c.set(r.X, bottom, glyph(b.BottomLeft))
	c.set(right, bottom, glyph(b.BottomRight))
}

func glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Render draws every leaf of root as a box labelled with its text, or its
// name when it has no text, on a width x height canvas. root must have
// been laid out. Overlapping leaves are drawn in tree order, so later
// children cover earlier ones. Leaves smaller than 2x2 get their label
// only.
func Render(root *grid.Element, width, height int, opts Options) string {
	border := opts.Border
	if border == (lipgloss.Border{}) {
		border = lipgloss.NormalBorder()
	}

	c := newCanvas(width, height)
	root.Walk(func(e *grid.Element) error {
		if len(e.Children()) > 0 {
			return nil
		}
		drawLeaf(c, e, border)
		return nil
	})
	return c.String()
}

func drawLeaf(c *canvas, e *grid.Element, border lipgloss.Border) {
	r := e.Rect()
	if r.Intersect(c.bounds()).IsEmpty() {
		return
	}

	label := e.Text()
	if label == "" {
		label = e.Name()
	}
	label = strings.ReplaceAll(label, "\n", " ")

	if r.Width < 2 || r.Height < 2 {
		c.text(r.X, r.Y, r.Width, label)
		return
	}

	c.box(r, border)
	if r.Width > 2 && r.Height > 2 {
		c.text(r.X+1, r.Y+1, r.Width-2, label)
	}
}

// Frame wraps a rendered canvas in a rounded lipgloss border with an
// optional title line above it.
func Frame(title, body string) string {
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Render(body)
	if title == "" {
		return framed
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), framed)
}
