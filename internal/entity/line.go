package entity

import "fmt"

// Line identifies one of the eight winning triples.
// The declaration order is the order in which lines are checked.
type Line int

const (
	LineRow0 Line = iota
	LineRow1
	LineRow2
	LineCol0
	LineCol1
	LineCol2
	LineDiagMain // top-left to bottom-right
	LineDiagAnti // top-right to bottom-left
)

var Lines = [...]Line{
	LineRow0, LineRow1, LineRow2,
	LineCol0, LineCol1, LineCol2,
	LineDiagMain, LineDiagAnti,
}

var winCombos = [...][3]int{
	LineRow0:     {0, 1, 2},
	LineRow1:     {3, 4, 5},
	LineRow2:     {6, 7, 8},
	LineCol0:     {0, 3, 6},
	LineCol1:     {1, 4, 7},
	LineCol2:     {2, 5, 8},
	LineDiagMain: {0, 4, 8},
	LineDiagAnti: {2, 4, 6},
}

// diagonalInset keeps diagonal highlights a quarter square away from the border.
const diagonalInset = 1.0 / (4 * BoardCols)

// Cells returns the board indices covered by the line.
func (that Line) Cells() [3]int {
	return winCombos[that]
}

func (that Line) String() string {
	switch {
	case that >= LineRow0 && that <= LineRow2:
		return fmt.Sprintf("row %d", int(that-LineRow0))
	case that >= LineCol0 && that <= LineCol2:
		return fmt.Sprintf("column %d", int(that-LineCol0))
	case that == LineDiagMain:
		return "main diagonal"
	case that == LineDiagAnti:
		return "anti diagonal"
	default:
		return fmt.Sprintf("line(%d)", int(that))
	}
}

// Point is a position in board-fraction units: (0,0) is the top-left corner of
// the board and (1,1) the bottom-right one.
type Point struct {
	X float64
	Y float64
}

// Segment is the highlight drawn over a winning line.
type Segment struct {
	From Point
	To   Point
}

// Segment returns the endpoints of the highlight for the line. Rows and columns
// run along their midline edge to edge, diagonals run corner to corner inset by
// a quarter square.
func (that Line) Segment() Segment {
	switch {
	case that >= LineRow0 && that <= LineRow2:
		y := midline(int(that - LineRow0))
		return Segment{From: Point{X: 0, Y: y}, To: Point{X: 1, Y: y}}
	case that >= LineCol0 && that <= LineCol2:
		x := midline(int(that - LineCol0))
		return Segment{From: Point{X: x, Y: 0}, To: Point{X: x, Y: 1}}
	case that == LineDiagMain:
		return Segment{
			From: Point{X: diagonalInset, Y: diagonalInset},
			To:   Point{X: 1 - diagonalInset, Y: 1 - diagonalInset},
		}
	default:
		return Segment{
			From: Point{X: diagonalInset, Y: 1 - diagonalInset},
			To:   Point{X: 1 - diagonalInset, Y: diagonalInset},
		}
	}
}

// Scale maps the segment onto a board of the given size.
func (that Segment) Scale(width, height float64) Segment {
	return Segment{
		From: Point{X: that.From.X * width, Y: that.From.Y * height},
		To:   Point{X: that.To.X * width, Y: that.To.Y * height},
	}
}

func midline(index int) float64 {
	return (float64(index) + 0.5) / BoardCols
}
