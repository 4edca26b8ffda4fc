package entity

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	row, col int
}

func play(t *testing.T, game *Game, moves ...move) {
	t.Helper()

	for _, m := range moves {
		require.True(t, game.ApplyMove(m.row, m.col), "move %d,%d should apply", m.row, m.col)
	}
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty, X moves first and the game is in progress
	assert.Equal(t, Board{}, game.Board())
	assert.Equal(t, PlayerX, game.Turn())
	assert.Equal(t, InProgress(), game.Outcome())
	assert.False(t, game.IsFinished())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X plays the centre
		applied := game.ApplyMove(1, 1)

		// Then: the centre holds X and it is O's turn
		require.True(t, applied)
		assert.Equal(t, PlayerX, game.Cell(1, 1))
		assert.Equal(t, PlayerO, game.Turn())
		assert.Equal(t, StatusOngoing, game.Outcome().Status())
	})

	t.Run("Occupied cell is a no-op", func(t *testing.T) {
		// Given: a game where X holds the corner
		game := NewGame()
		play(t, game, move{0, 0})
		before := *game

		// When: O plays the same corner
		applied := game.ApplyMove(0, 0)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, before, *game)
	})

	t.Run("Out of range coordinates are a no-op", func(t *testing.T) {
		game := NewGame()
		play(t, game, move{2, 2})
		before := *game

		for _, m := range []move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
			assert.False(t, game.ApplyMove(m.row, m.col))
			assert.Equal(t, before, *game)
		}
	})

	t.Run("Moves after a win are a no-op", func(t *testing.T) {
		// Given: a game X has won on the top row
		game := NewGame()
		play(t, game, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})
		before := *game

		// When: further moves are attempted
		for row := 0; row < BoardRows; row++ {
			for col := 0; col < BoardCols; col++ {
				assert.False(t, game.ApplyMove(row, col))
			}
		}

		// Then: the finished game is unchanged
		assert.Equal(t, before, *game)
	})

	t.Run("Moves after a draw are a no-op", func(t *testing.T) {
		game := NewGame()
		play(t, game,
			move{0, 0}, move{0, 1}, move{0, 2},
			move{1, 1}, move{1, 0}, move{1, 2},
			move{2, 1}, move{2, 0}, move{2, 2},
		)
		before := *game

		assert.False(t, game.ApplyMove(1, 1))
		assert.Equal(t, before, *game)
	})
}

func TestGame_Scenarios(t *testing.T) {
	t.Run("X wins on the top row and keeps the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X completes row 0
		play(t, game, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

		// Then: X has won on row 0 and the turn did not flip
		assert.Equal(t, Win(PlayerX, LineRow0), game.Outcome())
		assert.Equal(t, PlayerX, game.Turn())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		game := NewGame()

		play(t, game,
			move{0, 0}, move{0, 1}, move{0, 2},
			move{1, 1}, move{1, 0}, move{1, 2},
			move{2, 1}, move{2, 0}, move{2, 2},
		)

		assert.Equal(t, Draw(), game.Outcome())
		_, won := game.Outcome().Winner()
		assert.False(t, won)
	})

	t.Run("X wins on the main diagonal", func(t *testing.T) {
		game := NewGame()

		play(t, game, move{0, 0}, move{0, 1}, move{1, 1}, move{0, 2}, move{2, 2})

		assert.Equal(t, Win(PlayerX, LineDiagMain), game.Outcome())
	})

	t.Run("O wins on a column", func(t *testing.T) {
		game := NewGame()

		play(t, game, move{0, 0}, move{0, 1}, move{2, 2}, move{1, 1}, move{1, 0}, move{2, 1})

		assert.Equal(t, Win(PlayerO, LineCol1), game.Outcome())
		assert.Equal(t, PlayerO, game.Turn())
	})

	t.Run("O wins on the anti diagonal", func(t *testing.T) {
		game := NewGame()

		play(t, game, move{0, 0}, move{0, 2}, move{0, 1}, move{1, 1}, move{2, 2}, move{2, 0})

		line, ok := game.Outcome().Line()
		require.True(t, ok)
		assert.Equal(t, LineDiagAnti, line)
	})

	t.Run("Winning with the last cell is a win, not a draw", func(t *testing.T) {
		game := NewGame()

		play(t, game,
			move{0, 0}, move{0, 1}, move{0, 2},
			move{1, 0}, move{1, 1}, move{1, 2},
			move{2, 1}, move{2, 0}, move{2, 2},
		)

		assert.True(t, game.Board().IsFull())
		assert.Equal(t, Win(PlayerX, LineDiagMain), game.Outcome())
	})
}

func TestGame_evaluateOutcome(t *testing.T) {
	t.Run("Rows are checked before columns and diagonals", func(t *testing.T) {
		// Given: a board with both row 0 and column 0 complete
		game := &Game{
			board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerX, PlayerO, PlayerO,
			},
			turn: PlayerX,
		}

		// When: the outcome is evaluated
		game.evaluateOutcome()

		// Then: the first line in check order is reported
		assert.Equal(t, Win(PlayerX, LineRow0), game.Outcome())
	})

	t.Run("Columns are checked before diagonals", func(t *testing.T) {
		game := &Game{
			board: Board{
				PlayerX, EmptyCell, PlayerO,
				PlayerX, PlayerX, EmptyCell,
				PlayerX, EmptyCell, PlayerX,
			},
		}

		game.evaluateOutcome()

		assert.Equal(t, Win(PlayerX, LineCol0), game.Outcome())
	})

	t.Run("Main diagonal is checked before the anti diagonal", func(t *testing.T) {
		game := &Game{
			board: Board{
				PlayerX, EmptyCell, PlayerX,
				PlayerO, PlayerX, EmptyCell,
				PlayerX, EmptyCell, PlayerX,
			},
		}

		game.evaluateOutcome()

		assert.Equal(t, Win(PlayerX, LineDiagMain), game.Outcome())
	})

	t.Run("Partial board stays in progress", func(t *testing.T) {
		game := &Game{
			board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		game.evaluateOutcome()

		assert.Equal(t, InProgress(), game.Outcome())
	})
}

func TestGame_CheckMove(t *testing.T) {
	t.Run("Legal move", func(t *testing.T) {
		game := NewGame()

		assert.NoError(t, game.CheckMove(2, 0))
	})

	t.Run("Invalid cell", func(t *testing.T) {
		game := NewGame()

		assert.ErrorIs(t, game.CheckMove(3, 0), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.CheckMove(0, -1), apperror.ErrInvalidCell)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		game := NewGame()
		play(t, game, move{1, 2})

		assert.ErrorIs(t, game.CheckMove(1, 2), apperror.ErrCellOccupied)
	})

	t.Run("Finished game", func(t *testing.T) {
		game := NewGame()
		play(t, game, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

		assert.ErrorIs(t, game.CheckMove(2, 0), apperror.ErrGameFinished)
		assert.ErrorIs(t, game.CheckMove(9, 9), apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Resets a finished game", func(t *testing.T) {
		// Given: a game O has won
		game := NewGame()
		play(t, game, move{0, 0}, move{0, 1}, move{2, 2}, move{1, 1}, move{1, 0}, move{2, 1})
		require.True(t, game.IsFinished())

		// When: the game is reset
		game.Reset()

		// Then: it is back to the start state
		assert.Equal(t, *NewGame(), *game)
	})

	t.Run("Resets a game in progress", func(t *testing.T) {
		game := NewGame()
		play(t, game, move{0, 0}, move{2, 2})

		game.Reset()

		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, PlayerX, game.Turn())
		assert.Equal(t, InProgress(), game.Outcome())
	})
}

func TestGame_RandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic test data

	for round := 0; round < 500; round++ {
		game := NewGame()

		for attempt := 0; attempt < 40 && !game.IsFinished(); attempt++ {
			row, col := rng.Intn(5)-1, rng.Intn(5)-1
			before := *game

			applied := game.ApplyMove(row, col)
			if !applied {
				require.Equal(t, before, *game)
				continue
			}

			x, o := game.Board().Count(PlayerX), game.Board().Count(PlayerO)
			require.Contains(t, []int{0, 1}, x-o)

			if !game.IsFinished() {
				require.Equal(t, x == o, game.Turn() == PlayerX)
			}
		}

		if game.IsFinished() {
			before := *game
			game.ApplyMove(rng.Intn(3), rng.Intn(3))
			require.Equal(t, before, *game)
		}
	}
}

func TestMark(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "-", EmptyCell.String())
}
