package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	TurnNext = "next"
	TurnWin  = "win"
	TurnDraw = "draw"
)

// Turn - the outcome of a successfully applied move.
type Turn struct {
	State  string
	Winner string
}

// Board - the game grid plus whose turn it is. Cells are stored row by row
// in a single slice; the row count is derived from len(Cells) and Cols.
type Board struct {
	Cells  []string
	Cols   int
	Player string
	Status string
	Winner string
}

// NewBoard - creates an empty rows×cols board with player X to move.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 {
		return nil, apperror.ErrNoRows
	}
	if cols < 1 {
		return nil, apperror.ErrNoCols
	}

	return &Board{
		Cells:  make([]string, rows*cols),
		Cols:   cols,
		Player: entity.PlayerX,
		Status: StatusOngoing,
	}, nil
}

// NewBoardFromCells - builds a board over an existing row-major grid, with
// player X to move. The grid must divide evenly into rows of cols cells.
func NewBoardFromCells(cells []string, cols int) (*Board, error) {
	if cols < 1 {
		return nil, apperror.ErrNoCols
	}
	if len(cells) == 0 {
		return nil, apperror.ErrNoRows
	}
	if len(cells)%cols != 0 {
		return nil, fmt.Errorf("%w: %d cells over %d columns", apperror.ErrUnevenBoard, len(cells), cols)
	}

	return &Board{
		Cells:  cells,
		Cols:   cols,
		Player: entity.PlayerX,
		Status: StatusOngoing,
	}, nil
}

// Rows - the number of rows on the board.
func (that *Board) Rows() int {
	return len(that.Cells) / that.Cols
}

func (that *Board) IsFinished() bool {
	return that.Status == StatusFinished
}

// Turn - applies the current player's move at pos. On success it reports
// whether the game continues, is won, or is drawn; the turn passes to the
// other player only when the game continues. Rejected moves never mutate
// the board.
func (that *Board) Turn(pos entity.Position) (Turn, error) {
	if that.IsFinished() {
		return Turn{}, apperror.ErrGameFinished
	}

	idx, err := that.toLinear(pos)
	if err != nil {
		return Turn{}, err
	}

	if that.Cells[idx] != entity.EmptyCell {
		return Turn{}, apperror.ErrCellOccupied
	}

	that.Cells[idx] = that.Player

	switch {
	case that.checkWin(idx):
		that.Status = StatusFinished
		that.Winner = that.Player
		return Turn{State: TurnWin, Winner: that.Player}, nil
	case that.checkDraw():
		that.Status = StatusFinished
		that.Winner = entity.PlayerTie
		return Turn{State: TurnDraw}, nil
	default:
		that.Player = entity.ToggleMark(that.Player)
		return Turn{State: TurnNext}, nil
	}
}

// toLinear - converts pos to an index into Cells, checking each axis
// independently and reporting which one (or both) is out of range.
func (that *Board) toLinear(pos entity.Position) (int, error) {
	rowOut := pos.Row < 0 || pos.Row >= that.Rows()
	colOut := pos.Col < 0 || pos.Col >= that.Cols

	switch {
	case rowOut && colOut:
		return 0, apperror.ErrPositionOutOfBounds
	case rowOut:
		return 0, apperror.ErrRowOutOfBounds
	case colOut:
		return 0, apperror.ErrColOutOfBounds
	}

	return pos.Row*that.Cols + pos.Col, nil
}

// checkWin - evaluates only the lines that pass through the just-placed
// index: its row, its column, and on square boards the diagonals.
func (that *Board) checkWin(idx int) bool {
	return that.checkRow(idx) || that.checkColumn(idx) || that.checkDiagonals(idx)
}

func (that *Board) checkRow(idx int) bool {
	start := (idx / that.Cols) * that.Cols
	return that.lineFilled(start, 1, that.Cols)
}

func (that *Board) checkColumn(idx int) bool {
	return that.lineFilled(idx%that.Cols, that.Cols, that.Rows())
}

func (that *Board) checkDiagonals(idx int) bool {
	rows := that.Rows()
	if rows != that.Cols {
		return false
	}

	if idx%(that.Cols+1) == 0 && that.lineFilled(0, that.Cols+1, rows) {
		return true
	}

	// the secondary diagonal does not exist on a 1×1 board
	if that.Cols > 1 && idx%(that.Cols-1) == 0 {
		return that.lineFilled(that.Cols-1, that.Cols-1, rows)
	}

	return false
}

// lineFilled - reports whether every cell on the strided line holds the
// current player's mark.
func (that *Board) lineFilled(start, step, count int) bool {
	for i := 0; i < count; i++ {
		if that.Cells[start+i*step] != that.Player {
			return false
		}
	}
	return true
}

func (that *Board) checkDraw() bool {
	for _, cell := range that.Cells {
		if cell == entity.EmptyCell {
			return false
		}
	}
	return true
}

// String - renders the grid with "|" between cells and a dashed separator
// line between rows. Empty cells render as a single space.
func (that *Board) String() string {
	var sb strings.Builder

	rows := that.Rows()
	separator := strings.Repeat("-", that.Cols*2-1)

	for row := 0; row < rows; row++ {
		for col := 0; col < that.Cols; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}

			cell := that.Cells[row*that.Cols+col]
			if cell == entity.EmptyCell {
				cell = " "
			}
			sb.WriteString(cell)
		}

		if row != rows-1 {
			sb.WriteByte('\n')
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
