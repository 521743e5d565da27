package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 9

// Line is an index triple that wins when all three cells hold the same mark.
type Line [3]int

// Lines holds every winning combination: rows, then columns, then diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major, Board[3*row+col].
type Board [BoardSize]Mark

func (that *Board) ValueAt(index int) Mark {
	mustBeCell(index)

	return that[index]
}

// Place overwrites the cell. The caller checks that the cell is empty.
func (that *Board) Place(index int, mark Mark) {
	mustBeCell(index)

	that[index] = mark
}

func (that *Board) Clear(index int) {
	mustBeCell(index)

	that[index] = EmptyCell
}

// EmptyIndices returns the empty cells in ascending order.
func (that *Board) EmptyIndices() []int {
	empty := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell.IsEmpty() {
			empty = append(empty, i)
		}
	}

	return empty
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

func IsCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// mustBeCell panics on an index outside the board: that is a bug in the caller.
func mustBeCell(index int) {
	if !IsCell(index) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index))
	}
}
