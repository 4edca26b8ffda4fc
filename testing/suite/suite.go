package suite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Controller *tictactoe.GameController
	Manager    *usecase.GameManager
}

// New - wires a fresh game session on the given layout. Everything the session
// logs, at debug level and up, is kept in Logs.
func New(t *testing.T, layout tictactoe.Layout) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	controller := tictactoe.NewGameController(entity.NewGame(), layout)
	manager := usecase.NewGameManager(logger, controller)

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("session logs:\n%s", logs.String())
		}
	})

	return &Suite{
		T:          t,
		Logger:     logger,
		Logs:       logs,
		Controller: controller,
		Manager:    manager,
	}
}
