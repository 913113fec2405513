package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type Server struct {
	logger *slog.Logger
	reader *bufio.Reader
	output *termenv.Output
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger,
		reader: bufio.NewReader(in),
		output: termenv.NewOutput(out),
	}
}

// Run - plays the game on the attached terminal until a win, a draw, or
// context cancellation. Rejected moves are reported to the player and the
// loop continues; input read failures abort the game.
func (that *Server) Run(ctx context.Context, board *tictactoe.Board) error {
	log := that.logger.With("component", "console")

	for {
		select {
		case <-ctx.Done():
			log.Info("Game canceled")
			return nil
		default:
		}

		that.printf("Current player turn is: %s\n", that.renderMark(board.Player))

		pos, err := that.readPosition()
		if err != nil {
			return fmt.Errorf("failed to read position: %w", err)
		}

		turn, err := board.Turn(pos)
		if err != nil {
			switch {
			case errors.Is(err, apperror.ErrCellOccupied):
				that.printf("This position is already occupied!\n")
			case errors.Is(err, apperror.ErrOutOfBounds):
				that.printf("Provided coordinates are out of the board!\n")
			default:
				return fmt.Errorf("turn failed: %w", err)
			}

			log.Debug("Move rejected", "row", pos.Row, "col", pos.Col, "error", err)
			that.printf("%s", renderBoard(that.output, board))
			continue
		}

		switch turn.State {
		case tictactoe.TurnWin:
			that.printf("Game over, player: %s won!\n", that.renderMark(turn.Winner))
		case tictactoe.TurnDraw:
			that.printf("Game over, it's a draw!\n")
		}

		that.printf("%s", renderBoard(that.output, board))

		if board.IsFinished() {
			log.Debug("Game finished", "winner", board.Winner)
			return nil
		}
	}
}

// readPosition - prompts until the player supplies two whitespace-separated
// integers, reprompting on partial or unparseable input.
func (that *Server) readPosition() (entity.Position, error) {
	for {
		that.printf("Inform position (row column): ")

		line, err := that.reader.ReadString('\n')
		coords := parseCoordinates(line)

		if len(coords) == 2 {
			return entity.Position{Row: coords[0], Col: coords[1]}, nil
		}

		if err != nil {
			return entity.Position{}, fmt.Errorf("failed to read input: %w", err)
		}

		if len(coords) == 1 {
			that.printf("Need to inform both coordinates! (row and column)\n")
		} else {
			that.printf("Could not convert provided input to coordinates!\n")
		}
	}
}

// parseCoordinates - picks up to the first two integer tokens on the line,
// skipping anything that does not parse.
func parseCoordinates(line string) []int {
	coords := make([]int, 0, 2)

	for _, field := range strings.Fields(line) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}

		coords = append(coords, n)
		if len(coords) == 2 {
			break
		}
	}

	return coords
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.output, format, args...)
}
