package entity

import "fmt"

type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

// Outcome is one of: in progress, won by a player along a line, or drawn.
// The zero value is in progress. Values are built only by the constructors
// below, so a winner and a draw can never be set together.
type Outcome struct {
	status Status
	winner Mark
	line   Line
}

func InProgress() Outcome {
	return Outcome{status: StatusOngoing}
}

func Win(winner Mark, line Line) Outcome {
	return Outcome{status: StatusWon, winner: winner, line: line}
}

func Draw() Outcome {
	return Outcome{status: StatusDraw}
}

func (that Outcome) Status() Status {
	return that.status
}

// Winner returns the winning player, ok is false unless the game was won.
func (that Outcome) Winner() (Mark, bool) {
	if that.status != StatusWon {
		return EmptyCell, false
	}
	return that.winner, true
}

// Line returns the completed line, ok is false unless the game was won.
func (that Outcome) Line() (Line, bool) {
	if that.status != StatusWon {
		return 0, false
	}
	return that.line, true
}

func (that Outcome) IsTerminal() bool {
	return that.status != StatusOngoing
}

func (that Outcome) String() string {
	switch that.status {
	case StatusWon:
		return fmt.Sprintf("%s won on %s", that.winner, that.line)
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
