package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Start - runs the game in the terminal until the player quits or ctx is done.
func Start(ctx context.Context, logger *slog.Logger, manager gameManager, opts Options) error {
	log := logger.With("component", "tui", "method", "Start")

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if opts.FrameRate > 0 {
		programOpts = append(programOpts, tea.WithFPS(opts.FrameRate))
	}

	program := tea.NewProgram(NewModel(logger, manager, opts), programOpts...)

	log.Info("starting terminal UI", "fps", opts.FrameRate)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("terminal UI stopped", "reason", ctx.Err())
			return nil
		}

		return fmt.Errorf("terminal UI failed: %w", err)
	}

	log.Info("terminal UI closed")

	return nil
}
