package entity

// Control tells who picks a player's moves: Human or Computer.
type Control interface {
	control()
}

// Human moves arrive from the presentation layer.
type Human struct{}

// Computer moves are picked by the bot at the given difficulty.
type Computer struct {
	Difficulty   Difficulty
	OpponentMark Mark
}

func (Human) control()    {}
func (Computer) control() {}

type Player struct {
	Name    string
	Mark    Mark
	Control Control
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark, Control: Human{}}
}

func NewBotPlayer(name string, mark Mark, difficulty Difficulty) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Control: Computer{
			Difficulty:   difficulty,
			OpponentMark: mark.Opponent(),
		},
	}
}

func (that *Player) IsBot() bool {
	_, ok := that.Control.(Computer)
	return ok
}
