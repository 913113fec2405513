package apperror

import (
	"errors"
	"fmt"
)

// Construction errors: a board that fails these checks is malformed and the
// program aborts with a message.
var (
	ErrNoRows      = errors.New("board must have at least one row")
	ErrNoCols      = errors.New("board must have at least one column")
	ErrUnevenBoard = errors.New("board length is not divisible by column count")
)

// Per-turn errors: the move is rejected, the board stays untouched and the
// player may try again.
var (
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
)

// Axis-specific out-of-bounds errors. Each wraps ErrOutOfBounds so callers
// that don't care about the axis can match the base sentinel.
var (
	ErrRowOutOfBounds      = fmt.Errorf("%w: row", ErrOutOfBounds)
	ErrColOutOfBounds      = fmt.Errorf("%w: column", ErrOutOfBounds)
	ErrPositionOutOfBounds = fmt.Errorf("%w: row and column", ErrOutOfBounds)
)
