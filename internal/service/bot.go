package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

type BotService interface {
	// ChooseMove picks a cell for the computer according to its difficulty.
	ChooseMove(board *entity.Board, mark entity.Mark, computer entity.Computer) int
	// BestMove returns the minimax-optimal cell, the first one in ascending order on ties.
	BestMove(board *entity.Board, mark, opponent entity.Mark) int
	// RandomMove returns an empty cell chosen uniformly at random.
	RandomMove(board *entity.Board) int
}

type botService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBotService(rnd *rand.Rand) BotService {
	return &botService{rnd: rnd}
}

func (that *botService) ChooseMove(board *entity.Board, mark entity.Mark, computer entity.Computer) int {
	probability, ok := computer.Difficulty.OptimalProbability()
	if !ok {
		panic(fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, computer.Difficulty))
	}

	if that.float64() < probability {
		return that.BestMove(board, mark, computer.OpponentMark)
	}

	return that.RandomMove(board)
}

func (that *botService) BestMove(board *entity.Board, mark, opponent entity.Mark) int {
	mustBePlayable(board)

	search := &minimax{board: board, mark: mark, opponent: opponent}

	bestCell, bestScore := -1, math.MinInt
	for _, cell := range board.EmptyIndices() {
		score := speculate(board, cell, mark, func() int {
			return search.score(false)
		})

		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

func (that *botService) RandomMove(board *entity.Board) int {
	mustBePlayable(board)

	empty := board.EmptyIndices()

	return empty[that.intN(len(empty))]
}

func (that *botService) float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

func (that *botService) intN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}

// minimax scores positions from the point of view of mark. It has no depth
// discount: a slow win scores the same as a fast one.
type minimax struct {
	board    *entity.Board
	mark     entity.Mark
	opponent entity.Mark
}

func (that *minimax) score(isMaximizing bool) int {
	if outcome := tictactoe.Evaluate(*that.board); outcome.IsTerminal() {
		return that.terminalScore(outcome)
	}

	if isMaximizing {
		best := math.MinInt
		for _, cell := range that.board.EmptyIndices() {
			best = max(best, speculate(that.board, cell, that.mark, func() int {
				return that.score(false)
			}))
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range that.board.EmptyIndices() {
		best = min(best, speculate(that.board, cell, that.opponent, func() int {
			return that.score(true)
		}))
	}

	return best
}

func (that *minimax) terminalScore(outcome entity.Outcome) int {
	switch {
	case outcome.IsDraw():
		return drawScore
	case outcome.Mark == that.mark:
		return winScore
	default:
		return lossScore
	}
}

// speculate places mark on an empty cell for the duration of fn. The cell is
// cleared on every exit path, including a panic inside fn.
func speculate(board *entity.Board, cell int, mark entity.Mark, fn func() int) int {
	board.Place(cell, mark)
	defer board.Clear(cell)

	return fn()
}

// mustBePlayable panics when there is nothing to decide: the caller must
// never ask for a move on a finished board.
func mustBePlayable(board *entity.Board) {
	if board.IsFull() {
		panic(apperror.ErrNoAvailableMoves)
	}

	if outcome := tictactoe.Evaluate(*board); outcome.IsTerminal() {
		panic(fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome))
	}
}
