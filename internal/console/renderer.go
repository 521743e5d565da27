package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Renderer draws game notifications as text. Empty cells show the number
// the player types to select them.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (that *Renderer) OnBoardChanged(board entity.Board) {
	that.write(FormatBoard(board) + "\n")
}

func (that *Renderer) OnTurnChanged(player entity.Player) {
	that.write(fmt.Sprintf("%s's turn (%s)\n", player.Name, player.Mark))
}

func (that *Renderer) OnGameEnded(outcome entity.Outcome, winner *entity.Player) {
	that.write(Announce(outcome, winner) + "\n" + "type restart to play again or quit to leave\n")
}

// Prompt writes a hint that is not tied to a game notification.
func (that *Renderer) Prompt(text string) {
	that.write(text + "\n")
}

func (that *Renderer) write(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = io.WriteString(that.out, text)
}

// FormatBoard renders the board as three rows separated by rules.
func FormatBoard(board entity.Board) string {
	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			cells = append(cells, cellLabel(index, board[index]))
		}
		rows = append(rows, " "+strings.Join(cells, " │ "))
	}

	return strings.Join(rows, "\n───┼───┼───\n")
}

// Announce returns the result line for a finished game.
func Announce(outcome entity.Outcome, winner *entity.Player) string {
	switch {
	case outcome.IsWin() && winner != nil:
		return fmt.Sprintf("%s wins with %s's on cells %s", winner.Name, winner.Mark, lineLabel(outcome.Line))
	case outcome.IsWin():
		return fmt.Sprintf("%s wins on cells %s", outcome.Mark, lineLabel(outcome.Line))
	case outcome.IsDraw():
		return "Draw!"
	default:
		return outcome.String()
	}
}

func cellLabel(index int, mark entity.Mark) string {
	if mark.IsEmpty() {
		return strconv.Itoa(index + 1)
	}

	return string(mark)
}

func lineLabel(line entity.Line) string {
	labels := make([]string, 0, len(line))
	for _, index := range line {
		labels = append(labels, strconv.Itoa(index+1))
	}

	return strings.Join(labels, "-")
}
