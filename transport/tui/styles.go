package tui

import "github.com/charmbracelet/lipgloss"

var (
	boardBG = lipgloss.Color("#1CAA9C")

	boardStyle  = lipgloss.NewStyle().Background(boardBG)
	gridStyle   = lipgloss.NewStyle().Background(boardBG).Foreground(lipgloss.Color("#179187")).Bold(true)
	crossStyle  = lipgloss.NewStyle().Background(boardBG).Foreground(lipgloss.Color("#424242")).Bold(true)
	circleStyle = lipgloss.NewStyle().Background(boardBG).Foreground(lipgloss.Color("#EFE7C8")).Bold(true)
	winStyle    = lipgloss.NewStyle().Background(boardBG).Foreground(lipgloss.Color("#FF0000")).Bold(true)

	statusStyle = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Foreground(lipgloss.Color("#FFFFFF"))
	titleStyle  = statusStyle.Bold(true)
	mutedStyle  = statusStyle.Faint(true)
)

func styleFor(k kind) lipgloss.Style {
	switch k {
	case kindGrid:
		return gridStyle
	case kindCross:
		return crossStyle
	case kindCircle:
		return circleStyle
	case kindWin:
		return winStyle
	default:
		return boardStyle
	}
}
