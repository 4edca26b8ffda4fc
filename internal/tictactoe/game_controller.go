package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Layout describes where the board sits on the renderer's surface, in the
// renderer's own units (pixels, terminal cells). The board starts at the
// origin and the status bar lies directly below it.
type Layout struct {
	BoardWidth   int
	BoardHeight  int
	StatusHeight int
}

// DefaultLayout is a 400x400 board with a 100 high status bar underneath.
var DefaultLayout = Layout{
	BoardWidth:   400,
	BoardHeight:  400,
	StatusHeight: 100,
}

func (that Layout) SquareWidth() int {
	return that.BoardWidth / entity.BoardCols
}

func (that Layout) SquareHeight() int {
	return that.BoardHeight / entity.BoardRows
}

func (that Layout) Width() int {
	return that.BoardWidth
}

func (that Layout) Height() int {
	return that.BoardHeight + that.StatusHeight
}

// Locate - maps a point to the board square under it. ok is false for points
// outside the board, the status bar included.
func (that Layout) Locate(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= that.BoardWidth || y >= that.BoardHeight {
		return 0, 0, false
	}

	sw, sh := that.SquareWidth(), that.SquareHeight()
	if sw <= 0 || sh <= 0 {
		return 0, 0, false
	}

	// the remainder of an uneven division belongs to the last square
	return min(y/sh, entity.BoardRows-1), min(x/sw, entity.BoardCols-1), true
}

// Action is what a click turned into.
type Action int

const (
	ActionIgnored Action = iota
	ActionMove
	ActionReset
)

func (that Action) String() string {
	switch that {
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return "ignored"
	}
}

// GameController turns clicks into moves on the game it drives.
type GameController struct {
	game   *entity.Game
	layout Layout
}

func NewGameController(game *entity.Game, layout Layout) *GameController {
	return &GameController{
		game:   game,
		layout: layout,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

func (that *GameController) Layout() Layout {
	return that.layout
}

// HandleClick - applies a click at x, y. A click on a finished game asks for a
// reset wherever it lands; the caller decides when to perform it. Any other
// click either places a mark or is ignored.
func (that *GameController) HandleClick(x, y int) Action {
	if that.game.IsFinished() {
		return ActionReset
	}

	row, col, ok := that.layout.Locate(x, y)
	if !ok {
		return ActionIgnored
	}

	if !that.game.ApplyMove(row, col) {
		return ActionIgnored
	}

	return ActionMove
}

// Reset - starts a new game.
func (that *GameController) Reset() {
	that.game.Reset()
}
