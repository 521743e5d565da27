package usecase

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type SessionStatus int

const (
	StatusSetup SessionStatus = iota
	StatusInProgress
	StatusTerminal
)

func (that SessionStatus) String() string {
	switch that {
	case StatusSetup:
		return "setup"
	case StatusInProgress:
		return "in progress"
	case StatusTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("SessionStatus(%d)", int(that))
	}
}

// GameSession is one game between two players. It is created by
// GameManager.StartGame and only mutated through the GameManager.
type GameSession struct {
	id      string
	mode    entity.Mode
	players [2]*entity.Player

	// busy is set for the whole time a move is being processed,
	// including the computer's delay and search.
	busy atomic.Bool

	mu      sync.RWMutex
	board   entity.Board
	active  int
	status  SessionStatus
	outcome entity.Outcome
	moves   int
}

func (that *GameSession) ID() string {
	return that.id
}

func (that *GameSession) Mode() entity.Mode {
	return that.mode
}

// Players returns copies of both players, player one first.
func (that *GameSession) Players() [2]entity.Player {
	return [2]entity.Player{*that.players[0], *that.players[1]}
}

func (that *GameSession) Status() SessionStatus {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.status
}

// Outcome returns the result of the last applied move.
func (that *GameSession) Outcome() entity.Outcome {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.outcome
}

func (that *GameSession) Moves() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.moves
}

func (that *GameSession) IsBusy() bool {
	return that.busy.Load()
}

// playerWithMark returns nil when nobody plays mark.
func (that *GameSession) playerWithMark(mark entity.Mark) *entity.Player {
	for _, player := range that.players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}
