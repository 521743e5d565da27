package apperror

import "errors"

// Contract violations. The core panics with these.
var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Reasons a human move is ignored.
var (
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameBusy         = errors.New("computer is still thinking")
)
