package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/console"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

// RunApp - runs the application on the standard streams until interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := console.New(os.Stdin, os.Stdout)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			out.WriteLine("CTRL+C detected, terminating")
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, out)
}

// Run - wires the game on top of the given console and plays until ctx is done or the input ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, term *console.Console) error {
	log := logger.With("component", "app")

	players, err := conf.GamePlayers()
	if err != nil {
		return fmt.Errorf("could not create players: %w", err)
	}

	board := connectfour.NewBoard()
	game, err := usecase.NewGameManager(
		logger,
		term,
		board,
		console.NewDimensionReader(term, term),
		console.NewTurnReader(term, term),
		connectfour.NewBoardPrinter(term, conf.EmptyRune()),
		players...,
	)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	term.WriteLine("Press CTRL+C for exit")

	// the loop blocks on input, so it runs aside and ctx decides when we stop waiting for it
	gameErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game loop", "players", len(players))
		gameErrCh <- game.Loop(ctx)
	}()

	select {
	case err = <-gameErrCh:
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game loop error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

