package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const windowTitle = "Tic Tac Toe"

// TerminalLayout fits 3x3 squares of 11x5 cells and a four line status bar.
var TerminalLayout = tictactoe.Layout{
	BoardWidth:   33,
	BoardHeight:  15,
	StatusHeight: 4,
}

type gameManager interface {
	Click(x, y int) tictactoe.Action
	ConfirmReset()
	ResetPending() bool
	Game() *entity.Game
	Layout() tictactoe.Layout
	Round() int
	Score() usecase.Score
}

// Options tune the cosmetic timing of the renderer.
type Options struct {
	FrameRate     int
	ResetDelay    time.Duration
	BlinkInterval time.Duration
}

type resetMsg struct{}

type blinkMsg struct {
	round int
}

// Model draws the game and forwards clicks to the manager. Bubble Tea runs it
// as the poll, update, render loop.
type Model struct {
	logger  *slog.Logger
	manager gameManager
	opts    Options

	keys keyMap
	help help.Model

	width   int
	height  int
	blinkOn bool
}

func NewModel(logger *slog.Logger, manager gameManager, opts Options) Model {
	return Model{
		logger:  logger.With("component", "tui"),
		manager: manager,
		opts:    opts,
		keys:    newKeyMap(),
		help:    help.New(),
		blinkOn: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.tooSmall() {
			m.logger.Warn("terminal smaller than the board",
				"width", msg.Width, "height", msg.Height,
				"need_width", m.manager.Layout().Width(), "need_height", m.manager.Layout().Height())
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("quit requested")
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.tooSmall() {
			return m, nil
		}
		return m.click(msg.X, msg.Y)

	case resetMsg:
		m.manager.ConfirmReset()
		m.blinkOn = true
		return m, nil

	case blinkMsg:
		if msg.round != m.manager.Round() || m.manager.Game().Outcome().Status() != entity.StatusWon {
			m.blinkOn = true
			return m, nil
		}
		m.blinkOn = !m.blinkOn
		return m, m.blink()
	}

	return m, nil
}

func (m Model) click(x, y int) (tea.Model, tea.Cmd) {
	switch m.manager.Click(x, y) {
	case tictactoe.ActionReset:
		return m, m.scheduleReset()
	case tictactoe.ActionMove:
		if m.manager.Game().Outcome().Status() == entity.StatusWon {
			m.blinkOn = true
			return m, m.blink()
		}
	case tictactoe.ActionIgnored:
	}

	return m, nil
}

func (m Model) scheduleReset() tea.Cmd {
	if m.opts.ResetDelay <= 0 {
		return func() tea.Msg { return resetMsg{} }
	}

	return tea.Tick(m.opts.ResetDelay, func(time.Time) tea.Msg {
		return resetMsg{}
	})
}

func (m Model) blink() tea.Cmd {
	if m.opts.BlinkInterval <= 0 {
		return nil
	}

	round := m.manager.Round()
	return tea.Tick(m.opts.BlinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{round: round}
	})
}

func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}

	layout := m.manager.Layout()
	return m.width < layout.Width() || m.height < layout.Height()
}

func (m Model) View() string {
	layout := m.manager.Layout()

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\n%s",
			layout.Width(), layout.Height(), m.width, m.height, m.help.View(m.keys))
	}

	board := m.boardCanvas().render()

	return lipgloss.JoinVertical(lipgloss.Left, board, m.statusBar())
}

func (m Model) boardCanvas() *canvas {
	layout := m.manager.Layout()
	game := m.manager.Game()

	c := newCanvas(layout.BoardWidth, layout.BoardHeight)
	drawGrid(c, layout)
	drawMarks(c, layout, game.Board())

	if line, ok := game.Outcome().Line(); ok && m.blinkOn {
		drawSegment(c, layout, line.Segment())
	}

	return c
}

func (m Model) statusBar() string {
	layout := m.manager.Layout()
	game := m.manager.Game()
	score := m.manager.Score()

	lines := []string{
		titleStyle.Render(center(statusMessage(game), layout.BoardWidth)),
		statusStyle.Render(center("", layout.BoardWidth)),
		mutedStyle.Render(center(fmt.Sprintf("X %d  O %d  Draw %d", score.XWins, score.OWins, score.Draws), layout.BoardWidth)),
		m.help.View(m.keys),
	}

	if game.IsFinished() {
		lines[1] = statusStyle.Render(center("Click to play again", layout.BoardWidth))
	}

	return strings.Join(lines[:min(len(lines), max(layout.StatusHeight, 1))], "\n")
}

func statusMessage(game *entity.Game) string {
	outcome := game.Outcome()

	if winner, ok := outcome.Winner(); ok {
		return fmt.Sprintf("%s has won!", winner)
	}

	if outcome.Status() == entity.StatusDraw {
		return "It's a Draw!"
	}

	return fmt.Sprintf("%s's Turn", game.Turn())
}

func center(text string, width int) string {
	pad := width - lipgloss.Width(text)
	if pad <= 0 {
		return text
	}

	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
