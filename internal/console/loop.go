package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	commandRestart = "restart"
	commandBack    = "back"
	commandQuit    = "quit"

	computerName = "Computer"
)

type gameManager interface {
	StartGame(ctx context.Context, settings entity.GameSettings) *usecase.GameSession
	SubmitHumanMove(ctx context.Context, session *usecase.GameSession, cell int) entity.Outcome
	ResetToSetup(session *usecase.GameSession)
}

// Loop turns lines typed by the user into game commands.
type Loop struct {
	logger   *slog.Logger
	manager  gameManager
	renderer *Renderer
	settings entity.GameSettings
}

func NewLoop(logger *slog.Logger, manager gameManager, renderer *Renderer, settings entity.GameSettings) *Loop {
	return &Loop{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		settings: settings,
	}
}

// Run plays games until the input ends, the user quits or ctx is done.
func (that *Loop) Run(ctx context.Context, in io.Reader) error {
	session := that.manager.StartGame(ctx, that.settings)
	defer func() {
		that.manager.ResetToSetup(session)
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		switch command := strings.ToLower(strings.TrimSpace(scanner.Text())); command {
		case "":
			continue
		case commandRestart, "r":
			that.manager.ResetToSetup(session)
			session = that.manager.StartGame(ctx, that.settings)
		case commandBack, "b":
			that.manager.ResetToSetup(session)
			that.logger.Info("back to setup", "sessionID", session.ID())

			settings, ok := that.setup(ctx, scanner)
			if !ok {
				return readErr(scanner)
			}

			that.settings = settings
			session = that.manager.StartGame(ctx, that.settings)
		case commandQuit, "q":
			that.logger.Info("leaving game", "sessionID", session.ID())
			return nil
		default:
			cell, ok := parseCell(command)
			if !ok {
				that.renderer.Prompt(fmt.Sprintf("enter a cell from 1 to %d, %s, %s or %s",
					entity.BoardSize, commandRestart, commandBack, commandQuit))
				continue
			}

			that.manager.SubmitHumanMove(ctx, session, cell)
		}
	}

	return readErr(scanner)
}

// setup asks for the mode, the names and the difficulty of the next game.
// Empty answers keep the current value. It returns false when the input ends,
// the user quits or ctx is done.
func (that *Loop) setup(ctx context.Context, scanner *bufio.Scanner) (entity.GameSettings, bool) {
	settings := that.settings

	ask := func(question string) (string, bool) {
		that.renderer.Prompt(question)
		if !scanner.Scan() || ctx.Err() != nil {
			return "", false
		}

		answer := strings.TrimSpace(scanner.Text())
		if command := strings.ToLower(answer); command == commandQuit || command == "q" {
			return "", false
		}

		return answer, true
	}

	for {
		answer, ok := ask(fmt.Sprintf("choose a mode, %s against the computer or %s for two players [%s]:",
			entity.ModeSinglePlayer, entity.ModeMultiPlayer, settings.Mode))
		if !ok {
			return settings, false
		}

		if answer == "" {
			break
		}

		mode, err := entity.ParseMode(answer)
		if err != nil {
			that.logger.Debug("invalid mode", "answer", answer, "error", err)
			continue
		}

		if mode != settings.Mode && mode == entity.ModeSinglePlayer {
			settings.PlayerNames[1] = computerName
		}

		settings.Mode = mode

		break
	}

	answer, ok := ask(fmt.Sprintf("name of player one [%s]:", settings.PlayerNames[0]))
	if !ok {
		return settings, false
	}

	if answer != "" {
		settings.PlayerNames[0] = answer
	}

	if settings.Mode == entity.ModeMultiPlayer {
		answer, ok = ask(fmt.Sprintf("name of player two [%s]:", settings.PlayerNames[1]))
		if !ok {
			return settings, false
		}

		if answer != "" {
			settings.PlayerNames[1] = answer
		}

		return settings, true
	}

	for {
		answer, ok = ask(fmt.Sprintf("choose a difficulty, %s, %s or %s [%s]:",
			entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyImpossible, settings.Difficulty))
		if !ok {
			return settings, false
		}

		if answer == "" {
			if _, known := settings.Difficulty.OptimalProbability(); known {
				return settings, true
			}

			continue
		}

		difficulty, err := entity.ParseDifficulty(answer)
		if err != nil {
			that.logger.Debug("invalid difficulty", "answer", answer, "error", err)
			continue
		}

		settings.Difficulty = difficulty

		return settings, true
	}
}

func readErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// parseCell maps the 1-based cell number shown on screen to a board index.
func parseCell(text string) (int, bool) {
	number, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}

	if index := number - 1; entity.IsCell(index) {
		return index, true
	}

	return 0, false
}
