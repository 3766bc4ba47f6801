package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type board interface {
	connectfour.Grid
	Reset(columnCount, rowCount int) error
	Turn(player entity.Player, columnIdx int) (connectfour.TurnResult, error)
}

type dimensionReader interface {
	Read() (int, int, error)
}

type turnReader interface {
	Read() (int, error)
}

type boardPrinter interface {
	Print(grid connectfour.Grid) error
}

type output interface {
	WriteLine(format string, args ...any)
}

// GameManager - runs matches one after another: asks for the board size, then lets the players take turns.
type GameManager struct {
	logger *slog.Logger

	output          output
	board           board
	dimensionReader dimensionReader
	turnReader      turnReader
	printer         boardPrinter

	players []entity.Player
}

func NewGameManager(
	logger *slog.Logger,
	output output,
	board board,
	dimensionReader dimensionReader,
	turnReader turnReader,
	printer boardPrinter,
	players ...entity.Player,
) (*GameManager, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNoPlayers, len(players))
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		output:          output,
		board:           board,
		dimensionReader: dimensionReader,
		turnReader:      turnReader,
		printer:         printer,

		players: players,
	}, nil
}

// Loop - plays matches until ctx is canceled or the input is exhausted.
func (that *GameManager) Loop(ctx context.Context) error {
	for {
		err := that.Play(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// Play - runs a single match from the dimension prompt to a win or a draw.
func (that *GameManager) Play(ctx context.Context) error {
	log := that.logger.With("match_id", uuid.NewString())

	columns, rows, err := that.readDimension()
	if err != nil {
		return err
	}

	if err = that.board.Reset(columns, rows); err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	log.Info("match started", "columns", columns, "rows", rows, "players", len(that.players))

	if err = that.printer.Print(that.board); err != nil {
		return err
	}

	for {
		for _, player := range that.players {
			if err = ctx.Err(); err != nil {
				log.Info("match interrupted")
				return err
			}

			result, turnErr := that.playTurn(log, player)
			if turnErr != nil {
				return turnErr
			}

			switch result {
			case connectfour.Draw:
				that.output.WriteLine("There is a draw")
				log.Info("match finished", "result", result)
				return nil
			case connectfour.Win:
				that.output.WriteLine("%s WIN!", player)
				log.Info("match finished", "result", result, "winner", player.Name())
				return nil
			}
		}
	}
}

// playTurn - asks the player for a column until the board accepts the drop.
func (that *GameManager) playTurn(log *slog.Logger, player entity.Player) (connectfour.TurnResult, error) {
	for {
		columnIdx, err := that.readTurn(player)
		if err != nil {
			return connectfour.Invalid, err
		}

		result, err := that.board.Turn(player, columnIdx)
		if err != nil {
			return connectfour.Invalid, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn", "player", player.Name(), "column", columnIdx, "result", result)

		if err = that.printer.Print(that.board); err != nil {
			return connectfour.Invalid, err
		}

		if result == connectfour.Invalid {
			that.output.WriteLine("Invalid entry: column is full")
			continue
		}

		return result, nil
	}
}

// readDimension - re-prompts until the size fits the board bounds.
func (that *GameManager) readDimension() (int, int, error) {
	for {
		that.output.WriteLine("")
		that.output.WriteLine("Please enter the board dimensions (number of rows, number of columns)")

		columns, rows, err := that.dimensionReader.Read()
		if err != nil {
			return 0, 0, err
		}

		switch {
		case columns < connectfour.MinColumns:
			that.output.WriteLine("Invalid entry: the 'number of columns' should be greater than or equal to %d", connectfour.MinColumns)
		case rows < connectfour.MinRows:
			that.output.WriteLine("Invalid entry: the 'number of rows' should be greater than or equal to %d", connectfour.MinRows)
		case columns > connectfour.MaxColumns:
			that.output.WriteLine("Invalid entry: the 'number of columns' should be less than or equal to %d", connectfour.MaxColumns)
		case rows > connectfour.MaxRows:
			that.output.WriteLine("Invalid entry: the 'number of rows' should be less than or equal to %d", connectfour.MaxRows)
		default:
			return columns, rows, nil
		}
	}
}

// readTurn - returns the 0-based column index chosen by the player.
func (that *GameManager) readTurn(player entity.Player) (int, error) {
	for {
		that.output.WriteLine("")
		that.output.WriteLine("%s turn:", player)

		column, err := that.turnReader.Read()
		if err != nil {
			return 0, err
		}

		if column < 1 {
			that.output.WriteLine("Invalid entry: the 'turn' should be greater than or equal to 1")
			continue
		}

		if column > that.board.Columns() {
			that.output.WriteLine("Invalid entry: the 'turn' should be less than or equal to %d", that.board.Columns())
			continue
		}

		return column - 1, nil
	}
}
