package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Presenter *Presenter
}

// New returns a context bounded by maxWaitDuration and a suite with a debug
// logger and an empty recording presenter.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:         t,
		Logger:    logger,
		Presenter: &Presenter{},
	}
}
