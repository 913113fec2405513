package entity

// Position - a zero-indexed (row, column) pair, validated against the board
// dimensions before use.
type Position struct {
	Row int
	Col int
}
