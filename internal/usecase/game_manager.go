package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type decisionEngine interface {
	ChooseMove(board *entity.Board, mark entity.Mark, computer entity.Computer) int
}

type presenter interface {
	OnBoardChanged(board entity.Board)
	OnTurnChanged(player entity.Player)
	OnGameEnded(outcome entity.Outcome, winner *entity.Player)
}

// GameManager runs the turns of game sessions. Every call runs to completion
// before it returns, computer replies included.
type GameManager struct {
	logger    *slog.Logger
	bot       decisionEngine
	presenter presenter

	computerDelay time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewGameManager(logger *slog.Logger, bot decisionEngine, presenter presenter, computerDelay time.Duration, rnd *rand.Rand) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		bot:       bot,
		presenter: presenter,

		computerDelay: computerDelay,
		rnd:           rnd,
	}
}

// StartGame sets up a new session and plays the computer's turn when it starts.
func (that *GameManager) StartGame(ctx context.Context, settings entity.GameSettings) *GameSession {
	session := &GameSession{
		id:      uuid.NewString(),
		mode:    settings.Mode,
		players: that.newPlayers(settings),
	}

	session.busy.Store(true)
	defer session.busy.Store(false)

	session.mu.Lock()
	session.board.Reset()
	session.active = that.startingPlayer(settings)
	session.status = StatusInProgress
	session.outcome = entity.InProgress()
	board, first := session.board, *session.players[session.active]
	session.mu.Unlock()

	that.logger.Info("game started",
		"sessionID", session.id,
		"mode", session.mode,
		"difficulty", settings.Difficulty,
		"first", first.Name,
	)

	that.presenter.OnBoardChanged(board)
	that.presenter.OnTurnChanged(first)

	that.playComputerTurns(ctx, session)

	return session
}

// SubmitHumanMove applies a human move and any computer replies, then returns
// the resulting outcome. Moves that are not allowed right now are ignored.
func (that *GameManager) SubmitHumanMove(ctx context.Context, session *GameSession, cell int) entity.Outcome {
	log := that.logger.With("method", "SubmitHumanMove", "sessionID", session.id, "cell", cell)

	if !entity.IsCell(cell) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell))
	}

	if !session.busy.CompareAndSwap(false, true) {
		log.Debug("move ignored", "reason", apperror.ErrGameBusy)
		return session.Outcome()
	}
	defer session.busy.Store(false)

	outcome, err := that.applyMove(session, cell, false)
	if err != nil {
		log.Debug("move ignored", "reason", err)
		return outcome
	}

	if outcome.IsTerminal() {
		return outcome
	}

	return that.playComputerTurns(ctx, session)
}

// ResetToSetup abandons the game and clears the board.
func (that *GameManager) ResetToSetup(session *GameSession) {
	session.mu.Lock()
	session.board.Reset()
	session.active = 0
	session.status = StatusSetup
	session.outcome = entity.InProgress()
	session.moves = 0
	board := session.board
	session.mu.Unlock()

	that.logger.Info("game reset to setup", "sessionID", session.id)

	that.presenter.OnBoardChanged(board)
}

func (that *GameManager) CurrentPlayer(session *GameSession) entity.Player {
	session.mu.RLock()
	defer session.mu.RUnlock()

	return *session.players[session.active]
}

// BoardSnapshot returns a copy of the live board.
func (that *GameManager) BoardSnapshot(session *GameSession) entity.Board {
	session.mu.RLock()
	defer session.mu.RUnlock()

	return session.board
}

// playComputerTurns lets computer players move until a human has to move or the game ends.
func (that *GameManager) playComputerTurns(ctx context.Context, session *GameSession) entity.Outcome {
	for {
		session.mu.RLock()
		status, outcome := session.status, session.outcome
		board, player := session.board, *session.players[session.active]
		session.mu.RUnlock()

		if status != StatusInProgress {
			return outcome
		}

		switch control := player.Control.(type) {
		case entity.Human:
			return outcome
		case entity.Computer:
			that.wait(ctx)

			// the search runs on a copy, readers never see speculative marks
			cell := that.bot.ChooseMove(&board, player.Mark, control)
			if !entity.IsCell(cell) {
				panic(fmt.Errorf("%w: computer chose cell %d", apperror.ErrInvalidCell, cell))
			}

			if _, err := that.applyMove(session, cell, true); err != nil {
				that.logger.Warn("computer move dropped", "sessionID", session.id, "cell", cell, "error", err)
				return session.Outcome()
			}
		default:
			panic(fmt.Sprintf("unknown player control %T", control))
		}
	}
}

// applyMove places the active player's mark and either ends the game or
// passes the turn. It returns an error, and leaves the session untouched,
// when the move is not allowed right now.
func (that *GameManager) applyMove(session *GameSession, cell int, byComputer bool) (entity.Outcome, error) {
	session.mu.Lock()

	if err := checkMove(session, cell, byComputer); err != nil {
		outcome := session.outcome
		session.mu.Unlock()

		return outcome, err
	}

	player := *session.players[session.active]
	session.board.Place(cell, player.Mark)
	session.moves++

	outcome := tictactoe.Evaluate(session.board)
	session.outcome = outcome

	if outcome.IsTerminal() {
		session.status = StatusTerminal
	} else {
		session.active = 1 - session.active
	}

	board, next := session.board, *session.players[session.active]

	var winner *entity.Player
	if outcome.IsWin() {
		if found := session.playerWithMark(outcome.Mark); found != nil {
			winnerCopy := *found
			winner = &winnerCopy
		}
	}

	session.mu.Unlock()

	that.logger.Debug("move applied", "sessionID", session.id, "player", player.Name, "mark", player.Mark, "cell", cell)

	that.presenter.OnBoardChanged(board)

	if outcome.IsTerminal() {
		that.logger.Info("game ended", "sessionID", session.id, "outcome", outcome.String())
		that.presenter.OnGameEnded(outcome, winner)

		return outcome, nil
	}

	that.presenter.OnTurnChanged(next)

	return outcome, nil
}

// checkMove must be called with the session lock held.
func checkMove(session *GameSession, cell int, byComputer bool) error {
	switch session.status {
	case StatusSetup:
		return apperror.ErrGameIsNotStarted
	case StatusTerminal:
		return apperror.ErrGameFinished
	case StatusInProgress:
	default:
		return fmt.Errorf("unknown session status: %s", session.status)
	}

	if session.players[session.active].IsBot() != byComputer {
		return apperror.ErrNotYourTurn
	}

	if !session.board.ValueAt(cell).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *GameManager) newPlayers(settings entity.GameSettings) [2]*entity.Player {
	first, second := entity.PlayerX, entity.PlayerO
	if settings.RandomMarks {
		first, second = that.randomMarks()
	}

	switch settings.Mode {
	case entity.ModeSinglePlayer:
		if _, ok := settings.Difficulty.OptimalProbability(); !ok {
			panic(fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, settings.Difficulty))
		}

		return [2]*entity.Player{
			entity.NewHumanPlayer(settings.PlayerNames[0], first),
			entity.NewBotPlayer(settings.PlayerNames[1], second, settings.Difficulty),
		}
	case entity.ModeMultiPlayer:
		return [2]*entity.Player{
			entity.NewHumanPlayer(settings.PlayerNames[0], first),
			entity.NewHumanPlayer(settings.PlayerNames[1], second),
		}
	default:
		panic(fmt.Errorf("%w: %q", apperror.ErrUnknownMode, settings.Mode))
	}
}

func (that *GameManager) randomMarks() (entity.Mark, entity.Mark) {
	if that.intN(2) == 0 {
		return entity.PlayerX, entity.PlayerO
	}

	return entity.PlayerO, entity.PlayerX
}

func (that *GameManager) startingPlayer(settings entity.GameSettings) int {
	if settings.RandomStart {
		return that.intN(2)
	}

	return 0
}

func (that *GameManager) intN(n int) int {
	that.rndMu.Lock()
	defer that.rndMu.Unlock()

	return that.rnd.IntN(n)
}

// wait holds the computer's move back so a human can follow it.
// A cancelled context cuts the delay short.
func (that *GameManager) wait(ctx context.Context) {
	if that.computerDelay <= 0 {
		return
	}

	timer := time.NewTimer(that.computerDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		that.logger.Debug("computer delay cut short", "error", ctx.Err())
	case <-timer.C:
	}
}
