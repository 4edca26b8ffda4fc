package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(entity.NewGame(), tui.TerminalLayout)
	gameManager := usecase.NewGameManager(logger, gameController)

	opts := tui.Options{
		FrameRate:     conf.Display.FrameRate,
		ResetDelay:    conf.Display.ResetDelay,
		BlinkInterval: conf.Display.BlinkInterval,
	}

	if err := tui.Start(ctx, logger, gameManager, opts); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game closed", "rounds", gameManager.Round(), "score", gameManager.Score())

	return nil
}
