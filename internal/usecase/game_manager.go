package usecase

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameController interface {
	HandleClick(x, y int) tictactoe.Action
	Reset()
	Game() *entity.Game
	Layout() tictactoe.Layout
}

// Score counts finished rounds of the running session.
type Score struct {
	XWins int
	OWins int
	Draws int
}

// GameManager runs the update step of the session: it feeds clicks to the
// controller, holds reset requests until the renderer confirms them and logs
// what happens to each round.
type GameManager struct {
	logger     *slog.Logger
	controller gameController

	round        int
	roundID      string
	resetPending bool
	score        Score
}

func NewGameManager(logger *slog.Logger, controller gameController) *GameManager {
	manager := &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,
	}
	manager.startRound()

	return manager
}

// Click - handles a click at x, y in renderer units.
func (that *GameManager) Click(x, y int) tictactoe.Action {
	log := that.logger.With("method", "Click", "round_id", that.roundID, "x", x, "y", y)

	if that.resetPending {
		log.Debug("click ignored, reset pending")
		return tictactoe.ActionIgnored
	}

	game := that.controller.Game()
	mark := game.Turn()

	action := that.controller.HandleClick(x, y)

	switch action {
	case tictactoe.ActionMove:
		log.Info("move applied", "mark", mark.String())
		that.recordOutcome(log, game.Outcome())
	case tictactoe.ActionReset:
		that.resetPending = true
		log.Info("reset requested", "outcome", game.Outcome().String())
	default:
		that.logIgnored(log, x, y)
	}

	return action
}

// ConfirmReset - performs a pending reset and starts the next round.
func (that *GameManager) ConfirmReset() {
	if !that.resetPending {
		return
	}

	that.controller.Reset()
	that.resetPending = false
	that.startRound()
}

func (that *GameManager) ResetPending() bool {
	return that.resetPending
}

// Game - read-only view for rendering; callers must not mutate it.
func (that *GameManager) Game() *entity.Game {
	return that.controller.Game()
}

func (that *GameManager) Layout() tictactoe.Layout {
	return that.controller.Layout()
}

func (that *GameManager) Round() int {
	return that.round
}

func (that *GameManager) RoundID() string {
	return that.roundID
}

func (that *GameManager) Score() Score {
	return that.score
}

func (that *GameManager) startRound() {
	that.round++
	that.roundID = uuid.NewString()

	that.logger.Info("round started", "round", that.round, "round_id", that.roundID)
}

func (that *GameManager) recordOutcome(log *slog.Logger, outcome entity.Outcome) {
	switch outcome.Status() {
	case entity.StatusWon:
		winner, _ := outcome.Winner()
		line, _ := outcome.Line()

		if winner == entity.PlayerX {
			that.score.XWins++
		} else {
			that.score.OWins++
		}

		log.Info("game won", "winner", winner.String(), "line", line.String())
	case entity.StatusDraw:
		that.score.Draws++

		log.Info("game drawn")
	case entity.StatusOngoing:
	}
}

func (that *GameManager) logIgnored(log *slog.Logger, x, y int) {
	row, col, ok := that.controller.Layout().Locate(x, y)
	if !ok {
		log.Debug("click ignored, outside the board")
		return
	}

	if err := that.controller.Game().CheckMove(row, col); err != nil {
		log.Debug("click ignored", "row", row, "col", col, "reason", err.Error())
	}
}
