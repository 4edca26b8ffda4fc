package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const (
	BoardRows = 3
	BoardCols = 3
	BoardSize = BoardRows * BoardCols
)

// Mark is the content of a board cell and also names a player.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

func (that Mark) String() string {
	if that == EmptyCell {
		return "-"
	}
	return string(that)
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// At returns the mark at row, col. Out of range coordinates read as EmptyCell.
func (that Board) At(row, col int) Mark {
	if !inRange(row, col) {
		return EmptyCell
	}
	return that[row*BoardCols+col]
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}
	return n
}

// IsFull reports whether every cell is taken.
func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// Game holds the state of a single local game: board, turn and outcome.
// It is changed only through ApplyMove and Reset.
type Game struct {
	board   Board
	turn    Mark
	outcome Outcome
}

// NewGame - returns a game in its start state.
func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - clears the board, gives the turn to X and sets the outcome to in progress.
func (that *Game) Reset() {
	that.board = Board{}
	that.turn = PlayerX
	that.outcome = InProgress()
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Cell(row, col int) Mark {
	return that.board.At(row, col)
}

func (that *Game) Turn() Mark {
	return that.turn
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsTerminal()
}

// CheckMove - tells whether a mark can be placed at row, col and why not.
func (that *Game) CheckMove(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !inRange(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if that.board.At(row, col) != EmptyCell {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// ApplyMove - places the current player's mark at row, col.
// Illegal moves leave the game untouched and report false.
func (that *Game) ApplyMove(row, col int) bool {
	if that.CheckMove(row, col) != nil {
		return false
	}

	that.board[row*BoardCols+col] = that.turn
	that.evaluateOutcome()

	// a finished game keeps the last mover on turn
	if !that.outcome.IsTerminal() {
		that.turn = that.turn.Opponent()
	}

	return true
}

func (that *Game) evaluateOutcome() {
	for _, line := range Lines {
		cells := line.Cells()
		a, b, c := that.board[cells[0]], that.board[cells[1]], that.board[cells[2]]
		if a != EmptyCell && a == b && b == c {
			that.outcome = Win(a, line)
			return
		}
	}

	if that.board.IsFull() {
		that.outcome = Draw()
	}
}

func inRange(row, col int) bool {
	return row >= 0 && row < BoardRows && col >= 0 && col < BoardCols
}
