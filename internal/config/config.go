package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Mode          string        `yaml:"mode" env:"GAME_MODE" env-default:"sp"`
	Difficulty    string        `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"impossible"`
	PlayerOneName string        `yaml:"player-one-name" env:"PLAYER_ONE_NAME" env-default:"Player 1"`
	PlayerTwoName string        `yaml:"player-two-name" env:"PLAYER_TWO_NAME" env-default:"Computer"`
	RandomMarks   bool          `yaml:"random-marks" env:"GAME_RANDOM_MARKS" env-default:"false"`
	RandomStart   bool          `yaml:"random-start" env:"GAME_RANDOM_START" env-default:"false"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"GAME_COMPUTER_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Settings converts the game section into settings for a new session.
func (that *Game) Settings() (entity.GameSettings, error) {
	mode, err := entity.ParseMode(that.Mode)
	if err != nil {
		return entity.GameSettings{}, fmt.Errorf("invalid game mode: %w", err)
	}

	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		return entity.GameSettings{}, fmt.Errorf("invalid difficulty: %w", err)
	}

	return entity.GameSettings{
		PlayerNames: [2]string{that.PlayerOneName, that.PlayerTwoName},
		Mode:        mode,
		Difficulty:  difficulty,
		RandomMarks: that.RandomMarks,
		RandomStart: that.RandomStart,
	}, nil
}
