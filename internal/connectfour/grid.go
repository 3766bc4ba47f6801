package connectfour

import "fmt"

// DefaultEmptyCell is drawn for cells nobody owns yet.
const DefaultEmptyCell = 'o'

// Grid - the read surface of a board, as consumed by printers and the game loop.
type Grid interface {
	Rows() int
	Columns() int
	GetCell(columnIdx, rowIdx int) (Cell, error)
}

// GetCellChar - symbol of the player in the cell, or empty when nobody owns it.
func GetCellChar(grid Grid, columnIdx, rowIdx int, empty rune) (rune, error) {
	cell, err := grid.GetCell(columnIdx, rowIdx)
	if err != nil {
		return empty, fmt.Errorf("failed to get cell: %w", err)
	}

	return cell.Char(empty), nil
}
