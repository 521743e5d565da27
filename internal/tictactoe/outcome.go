package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Evaluate reports the state of the board. When several lines are complete,
// the first one in entity.Lines wins.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if !a.IsEmpty() && a == b && b == c {
			return entity.Win(a, line)
		}
	}

	// the game continues until all the cells are full
	if !board.IsFull() {
		return entity.InProgress()
	}

	return entity.Draw()
}
