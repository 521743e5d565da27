package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mode string

const (
	ModeSinglePlayer Mode = "sp"
	ModeMultiPlayer  Mode = "mp"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ModeSinglePlayer, ModeMultiPlayer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyImpossible Difficulty = "impossible"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyImpossible:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// OptimalProbability is the chance that the bot plays the minimax move instead of a random one.
func (that Difficulty) OptimalProbability() (float64, bool) {
	switch that {
	case DifficultyEasy:
		return 0.3, true
	case DifficultyMedium:
		return 0.5, true
	case DifficultyImpossible:
		return 1, true
	default:
		return 0, false
	}
}

// GameSettings is everything needed to set up a session.
// Difficulty applies to the computer player in ModeSinglePlayer only.
type GameSettings struct {
	PlayerNames [2]string
	Mode        Mode
	Difficulty  Difficulty
	RandomMarks bool
	RandomStart bool
}
