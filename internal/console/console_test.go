package console

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newTestLoop(st *suite.Suite, out *bytes.Buffer, settings entity.GameSettings) *Loop {
	renderer := NewRenderer(out)
	bot := service.NewBotService(rand.New(rand.NewPCG(1, 2))) //nolint: gosec // deterministic tests
	manager := usecase.NewGameManager(st.Logger, bot, renderer, 0, rand.New(rand.NewPCG(3, 4))) //nolint: gosec // deterministic tests

	return NewLoop(st.Logger, manager, renderer, settings)
}

func TestFormatBoard(t *testing.T) {
	t.Run("Empty cells show their numbers", func(t *testing.T) {
		expected := " 1 │ 2 │ 3\n───┼───┼───\n 4 │ 5 │ 6\n───┼───┼───\n 7 │ 8 │ 9"

		assert.Equal(t, expected, FormatBoard(entity.Board{}))
	})

	t.Run("Marks replace the numbers", func(t *testing.T) {
		board := entity.Board{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", entity.PlayerX}
		expected := " X │ 2 │ 3\n───┼───┼───\n 4 │ O │ 6\n───┼───┼───\n 7 │ 8 │ X"

		assert.Equal(t, expected, FormatBoard(board))
	})
}

func TestAnnounce(t *testing.T) {
	winner := entity.NewHumanPlayer("Alice", entity.PlayerX)

	assert.Equal(t, "Alice wins with X's on cells 1-5-9",
		Announce(entity.Win(entity.PlayerX, entity.Line{0, 4, 8}), winner))
	assert.Equal(t, "Draw!", Announce(entity.Draw(), nil))
}

func TestLoop_Run(t *testing.T) {
	t.Run("Two players play to a win", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		// When: Alice takes the top row while Bob plays the middle row
		err := loop.Run(ctx, strings.NewReader("1\n4\n2\n5\n3\nquit\n"))

		// Then: the win is announced
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Alice's turn (X)")
		assert.Contains(t, out.String(), "Bob's turn (O)")
		assert.Contains(t, out.String(), "Alice wins with X's on cells 1-2-3")
	})

	t.Run("Invalid input gets a hint", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		err := loop.Run(ctx, strings.NewReader("hello\n0\n10\n"))

		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out.String(), "enter a cell from 1 to 9"))
	})

	t.Run("Computer answers every human move", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Computer"},
			Mode:        entity.ModeSinglePlayer,
			Difficulty:  entity.DifficultyImpossible,
		})

		// When: Alice opens in the centre
		err := loop.Run(ctx, strings.NewReader("5\n"))

		// Then: the computer took the first corner
		require.NoError(t, err)
		assert.Contains(t, out.String(), " O │ 2 │ 3\n───┼───┼───\n 4 │ X │ 6")
	})

	t.Run("Restart starts a fresh board", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		err := loop.Run(ctx, strings.NewReader("5\nrestart\n"))

		// Then: the second game starts with Alice again
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Alice's turn (X)"))
		assert.Equal(t, 1, strings.Count(out.String(), "Bob's turn (O)"))
	})

	t.Run("Back returns to mode and name selection", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		// When: the players go back and pick a game against the computer
		err := loop.Run(ctx, strings.NewReader("back\nsp\nCarol\nhard\nimpossible\n5\nquit\n"))

		// Then: Carol plays X against the computer, which answers in the corner
		require.NoError(t, err)
		assert.Contains(t, out.String(), "choose a mode")
		assert.Equal(t, 2, strings.Count(out.String(), "choose a difficulty"))
		assert.Contains(t, out.String(), "Carol's turn (X)")
		assert.Contains(t, out.String(), "Computer's turn (O)")
		assert.Contains(t, out.String(), " O │ 2 │ 3\n───┼───┼───\n 4 │ X │ 6")
		assert.NotContains(t, out.String(), "Bob's turn")
	})

	t.Run("Empty answers keep the current setup", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		err := loop.Run(ctx, strings.NewReader("back\n\n\n\n1\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "name of player two [Bob]:")
		assert.Equal(t, 2, strings.Count(out.String(), "Alice's turn (X)"))
		assert.Equal(t, 1, strings.Count(out.String(), "Bob's turn (O)"))
	})

	t.Run("Quit during setup leaves", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		err := loop.Run(ctx, strings.NewReader("back\nquit\n5\n"))

		require.NoError(t, err)
		assert.NotContains(t, out.String(), " X ")
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		ctx, st := suite.New(t)
		out := &bytes.Buffer{}
		loop := newTestLoop(st, out, entity.GameSettings{
			PlayerNames: [2]string{"Alice", "Bob"},
			Mode:        entity.ModeMultiPlayer,
		})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := loop.Run(cancelled, strings.NewReader("5\n"))

		require.NoError(t, err)
		assert.NotContains(t, out.String(), " X ")
	})
}
