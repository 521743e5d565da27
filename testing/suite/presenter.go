package suite

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Result struct {
	Outcome entity.Outcome
	Winner  *entity.Player
}

// Presenter records every notification the game manager sends.
type Presenter struct {
	mu sync.Mutex

	boards  []entity.Board
	turns   []entity.Player
	results []Result
}

func (that *Presenter) OnBoardChanged(board entity.Board) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.boards = append(that.boards, board)
}

func (that *Presenter) OnTurnChanged(player entity.Player) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.turns = append(that.turns, player)
}

func (that *Presenter) OnGameEnded(outcome entity.Outcome, winner *entity.Player) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.results = append(that.results, Result{Outcome: outcome, Winner: winner})
}

func (that *Presenter) Boards() []entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Board(nil), that.boards...)
}

func (that *Presenter) Turns() []entity.Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Player(nil), that.turns...)
}

func (that *Presenter) Results() []Result {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Result(nil), that.results...)
}

// LastBoard returns the most recent board, or an empty one when nothing was drawn yet.
func (that *Presenter) LastBoard() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.boards) == 0 {
		return entity.Board{}
	}

	return that.boards[len(that.boards)-1]
}
