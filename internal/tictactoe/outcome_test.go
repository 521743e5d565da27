package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Winner X in a column", func(t *testing.T) {
		// Given: a board where player X fills the first column
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: player X wins on line {0,3,6}
		require.Equal(t, entity.Win(x, entity.Line{0, 3, 6}), outcome)
	})

	t.Run("Winner O on a diagonal", func(t *testing.T) {
		// Given: a board where player O fills the anti-diagonal
		board := entity.Board{x, x, o, e, o, x, o, e, e}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: player O wins on line {2,4,6}
		require.Equal(t, entity.Win(o, entity.Line{2, 4, 6}), outcome)
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with no complete line and empty cells
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, entity.InProgress(), outcome)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), outcome)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Win on the last move is not a draw", func(t *testing.T) {
		// Given: a full board whose last move completes a line
		board := entity.Board{x, o, x, o, x, o, o, x, x}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the win is reported
		assert.Equal(t, entity.Win(x, entity.Line{0, 4, 8}), outcome)
	})

	t.Run("First line in enumeration order wins ties", func(t *testing.T) {
		// Given: an invalid board where two lines are complete
		board := entity.Board{o, o, o, x, x, x, e, e, e}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the top row is reported because it comes first
		assert.Equal(t, entity.Win(o, entity.Line{0, 1, 2}), outcome)
	})
}

func TestEvaluate_ReachableBoards(t *testing.T) {
	// Walk every board reachable from the empty board by alternating moves.
	visited := make(map[entity.Board]struct{})

	var walk func(board entity.Board, mark entity.Mark)
	walk = func(board entity.Board, mark entity.Mark) {
		if _, ok := visited[board]; ok {
			return
		}
		visited[board] = struct{}{}

		outcome := Evaluate(board)
		require.False(t, outcome.IsWin() && outcome.IsDraw())

		if outcome.IsDraw() {
			require.True(t, board.IsFull())
		}

		if outcome.IsTerminal() {
			return
		}

		for _, index := range board.EmptyIndices() {
			next := board
			next.Place(index, mark)
			walk(next, mark.Opponent())
		}
	}

	walk(entity.Board{}, x)

	// 5478 legal positions exist in tic-tac-toe, including the empty board.
	assert.Len(t, visited, 5478)
}
