package tui

import (
	"math"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type kind uint8

const (
	kindBoard kind = iota
	kindGrid
	kindCross
	kindCircle
	kindWin
)

// canvas is a grid of terminal cells, each holding a glyph and what it depicts.
type canvas struct {
	width  int
	height int
	glyphs [][]rune
	kinds  [][]kind
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		glyphs: make([][]rune, height),
		kinds:  make([][]kind, height),
	}

	for y := range c.glyphs {
		c.glyphs[y] = []rune(strings.Repeat(" ", width))
		c.kinds[y] = make([]kind, width)
	}

	return c
}

func (that *canvas) set(x, y int, glyph rune, k kind) {
	if x < 0 || y < 0 || x >= that.width || y >= that.height {
		return
	}

	that.glyphs[y][x] = glyph
	that.kinds[y][x] = k
}

func (that *canvas) row(y int) string {
	return string(that.glyphs[y])
}

// render styles each run of cells of the same kind.
func (that *canvas) render() string {
	lines := make([]string, that.height)

	for y := 0; y < that.height; y++ {
		var b strings.Builder

		start := 0
		for x := 1; x <= that.width; x++ {
			if x < that.width && that.kinds[y][x] == that.kinds[y][start] {
				continue
			}
			b.WriteString(styleFor(that.kinds[y][start]).Render(string(that.glyphs[y][start:x])))
			start = x
		}

		lines[y] = b.String()
	}

	return strings.Join(lines, "\n")
}

func drawGrid(c *canvas, layout tictactoe.Layout) {
	sw, sh := layout.SquareWidth(), layout.SquareHeight()

	for i := 1; i < entity.BoardRows; i++ {
		for x := 0; x < layout.BoardWidth; x++ {
			c.set(x, i*sh, '─', kindGrid)
		}
	}

	for i := 1; i < entity.BoardCols; i++ {
		for y := 0; y < layout.BoardHeight; y++ {
			glyph := '│'
			if y > 0 && y%sh == 0 {
				glyph = '┼'
			}
			c.set(i*sw, y, glyph, kindGrid)
		}
	}
}

func drawMarks(c *canvas, layout tictactoe.Layout, board entity.Board) {
	sw, sh := layout.SquareWidth(), layout.SquareHeight()

	for row := 0; row < entity.BoardRows; row++ {
		for col := 0; col < entity.BoardCols; col++ {
			cx, cy := col*sw+sw/2, row*sh+sh/2

			switch board.At(row, col) {
			case entity.PlayerX:
				drawCross(c, cx, cy)
			case entity.PlayerO:
				drawCircle(c, cx, cy)
			case entity.EmptyCell:
			}
		}
	}
}

func drawCross(c *canvas, cx, cy int) {
	c.set(cx-1, cy-1, '╲', kindCross)
	c.set(cx+1, cy-1, '╱', kindCross)
	c.set(cx, cy, '╳', kindCross)
	c.set(cx-1, cy+1, '╱', kindCross)
	c.set(cx+1, cy+1, '╲', kindCross)
}

func drawCircle(c *canvas, cx, cy int) {
	c.set(cx-2, cy-1, '╭', kindCircle)
	c.set(cx+2, cy-1, '╮', kindCircle)
	c.set(cx-2, cy, '│', kindCircle)
	c.set(cx+2, cy, '│', kindCircle)
	c.set(cx-2, cy+1, '╰', kindCircle)
	c.set(cx+2, cy+1, '╯', kindCircle)

	for x := cx - 1; x <= cx+1; x++ {
		c.set(x, cy-1, '─', kindCircle)
		c.set(x, cy+1, '─', kindCircle)
	}
}

// drawSegment rasterizes a segment given in board-fraction units.
func drawSegment(c *canvas, layout tictactoe.Layout, segment entity.Segment) {
	s := segment.Scale(float64(layout.BoardWidth), float64(layout.BoardHeight))
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y

	glyph := '╲'
	switch {
	case dy == 0:
		glyph = '━'
	case dx == 0:
		glyph = '┃'
	case dx*dy < 0:
		glyph = '╱'
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))) * 2
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := clamp(int(math.Floor(s.From.X+dx*t)), 0, layout.BoardWidth-1)
		y := clamp(int(math.Floor(s.From.Y+dy*t)), 0, layout.BoardHeight-1)

		c.set(x, y, glyph, kindWin)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
