package entity

import "fmt"

type OutcomeStatus int

const (
	OutcomeInProgress OutcomeStatus = iota
	OutcomeWin
	OutcomeDraw
)

func (that OutcomeStatus) String() string {
	switch that {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return fmt.Sprintf("OutcomeStatus(%d)", int(that))
	}
}

// Outcome is the result of evaluating a board. Mark and Line are set only for a win.
type Outcome struct {
	Status OutcomeStatus
	Mark   Mark
	Line   Line
}

func InProgress() Outcome {
	return Outcome{Status: OutcomeInProgress}
}

func Win(mark Mark, line Line) Outcome {
	return Outcome{Status: OutcomeWin, Mark: mark, Line: line}
}

func Draw() Outcome {
	return Outcome{Status: OutcomeDraw}
}

func (that Outcome) IsWin() bool {
	return that.Status == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == OutcomeDraw
}

// IsTerminal reports whether no further moves can be played.
func (that Outcome) IsTerminal() bool {
	return that.IsWin() || that.IsDraw()
}

func (that Outcome) String() string {
	if that.IsWin() {
		return fmt.Sprintf("win(%s, %v)", that.Mark, that.Line)
	}

	return that.Status.String()
}
