package console

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// renderBoard - renders the grid with "|" between cells and a dashed line
// between rows, coloring the marks when the terminal supports it.
func renderBoard(output *termenv.Output, board *tictactoe.Board) string {
	var sb strings.Builder

	rows := board.Rows()
	separator := strings.Repeat("-", board.Cols*2-1)

	for row := 0; row < rows; row++ {
		for col := 0; col < board.Cols; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(renderCell(output, board.Cells[row*board.Cols+col]))
		}
		sb.WriteByte('\n')

		if row != rows-1 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// renderMark - colors a player mark for prompts and announcements.
func (that *Server) renderMark(mark string) string {
	return renderCell(that.output, mark)
}

func renderCell(output *termenv.Output, cell string) string {
	switch cell {
	case entity.PlayerX:
		return output.String(cell).Foreground(termenv.ANSIRed).String()
	case entity.PlayerO:
		return output.String(cell).Foreground(termenv.ANSIBlue).String()
	default:
		return " "
	}
}
