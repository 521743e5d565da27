package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings, err := conf.Game.Settings()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	renderer := console.NewRenderer(os.Stdout)
	botService := service.NewBotService(newRand())
	gameManager := usecase.NewGameManager(logger, botService, renderer, conf.Game.ComputerDelay, newRand())
	loop := console.NewLoop(logger, gameManager, renderer, settings)

	// run console loop
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "mode", settings.Mode, "difficulty", settings.Difficulty)
		consoleErrCh <- loop.Run(ctx, os.Stdin)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newRand returns a source for a single consumer, *rand.Rand is not shared.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game randomness
}
