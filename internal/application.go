package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
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

	board, err := tictactoe.NewBoard(conf.Board.Rows, conf.Board.Cols)
	if err != nil {
		return fmt.Errorf("cannot construct a board with the configured dimensions: %w", err)
	}

	gameErrCh := make(chan error, 1)
	go func() {
		log.Debug("Starting game", "rows", conf.Board.Rows, "cols", conf.Board.Cols)
		server := console.New(logger, os.Stdin, os.Stdout)
		gameErrCh <- server.Run(ctx, board)
	}()

	select {
	case err = <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game loop error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
