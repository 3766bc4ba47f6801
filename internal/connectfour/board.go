package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	MinColumns = 4
	MaxColumns = 10
	MinRows    = 4
	MaxRows    = 10

	CountToWin = 4
)

// directions scanned from the landing cell: row, column and both diagonals.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// Board - the grid of a single match. Row 0 is the top row, pieces fall towards rowCount-1.
type Board struct {
	columns int
	rows    int
	cells   []Cell

	filled   int
	finished bool
}

// NewBoard - returns an empty board of the minimal size.
func NewBoard() *Board {
	return &Board{
		columns: MinColumns,
		rows:    MinRows,
		cells:   make([]Cell, MinColumns*MinRows),
	}
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Columns() int {
	return that.columns
}

// Reset - discards the current match and resizes the board. On error the board is left untouched.
func (that *Board) Reset(columnCount, rowCount int) error {
	if err := validateDimensions(columnCount, rowCount); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}

	that.columns = columnCount
	that.rows = rowCount
	that.cells = make([]Cell, columnCount*rowCount)
	that.filled = 0
	that.finished = false

	return nil
}

func (that *Board) GetCell(columnIdx, rowIdx int) (Cell, error) {
	if err := that.validateColumn(columnIdx); err != nil {
		return Cell{}, err
	}

	if err := firstError(
		apperror.GreaterThanOrEqualTo(rowIdx, 0, "rowIdx"),
		apperror.LessThan(rowIdx, that.rows, "rowIdx"),
	); err != nil {
		return Cell{}, err
	}

	return that.cells[that.index(columnIdx, rowIdx)], nil
}

// Turn - drops a piece of player into the column. Turn order is the caller's business.
func (that *Board) Turn(player entity.Player, columnIdx int) (TurnResult, error) {
	if err := that.validateColumn(columnIdx); err != nil {
		return Invalid, err
	}

	if player.Symbol() == 0 {
		return Invalid, fmt.Errorf("%w: player has no symbol", apperror.ErrInvalidPlayer)
	}

	if that.finished {
		return Invalid, nil
	}

	rowIdx := that.landingRow(columnIdx)
	if rowIdx < 0 {
		return Invalid, nil
	}

	that.cells[that.index(columnIdx, rowIdx)] = Occupied(player)
	that.filled++

	// a win on the last free cell is still a win
	if that.isWin(player, columnIdx, rowIdx) {
		that.finished = true
		return Win, nil
	}

	if that.filled == len(that.cells) {
		that.finished = true
		return Draw, nil
	}

	return Success, nil
}

// landingRow - the lowest empty row of the column, or -1 when the column is full.
func (that *Board) landingRow(columnIdx int) int {
	for rowIdx := that.rows - 1; rowIdx >= 0; rowIdx-- {
		if that.cells[that.index(columnIdx, rowIdx)].IsEmpty() {
			return rowIdx
		}
	}

	return -1
}

// isWin - checks only the lines passing through the landing cell.
func (that *Board) isWin(player entity.Player, columnIdx, rowIdx int) bool {
	for _, dir := range directions {
		run := 1 +
			that.countRun(player, columnIdx, rowIdx, dir[0], dir[1]) +
			that.countRun(player, columnIdx, rowIdx, -dir[0], -dir[1])

		if run >= CountToWin {
			return true
		}
	}

	return false
}

// countRun - consecutive cells owned by player, starting next to (columnIdx, rowIdx) and moving by (dc, dr).
func (that *Board) countRun(player entity.Player, columnIdx, rowIdx, dc, dr int) int {
	count := 0

	c, r := columnIdx+dc, rowIdx+dr
	for that.contains(c, r) {
		occupant, ok := that.cells[that.index(c, r)].Player()
		if !ok || !occupant.SameAs(player) {
			break
		}

		count++
		c += dc
		r += dr
	}

	return count
}

func (that *Board) contains(columnIdx, rowIdx int) bool {
	return columnIdx >= 0 && columnIdx < that.columns && rowIdx >= 0 && rowIdx < that.rows
}

func (that *Board) validateColumn(columnIdx int) error {
	return firstError(
		apperror.GreaterThanOrEqualTo(columnIdx, 0, "columnIdx"),
		apperror.LessThan(columnIdx, that.columns, "columnIdx"),
	)
}

func (that *Board) index(columnIdx, rowIdx int) int {
	return rowIdx*that.columns + columnIdx
}

// validateDimensions - checks board size against the Min/Max bounds.
func validateDimensions(columnCount, rowCount int) error {
	return firstError(
		apperror.GreaterThanOrEqualTo(columnCount, MinColumns, "columnCount"),
		apperror.GreaterThanOrEqualTo(rowCount, MinRows, "rowCount"),
		apperror.LessThanOrEqualTo(columnCount, MaxColumns, "columnCount"),
		apperror.LessThanOrEqualTo(rowCount, MaxRows, "rowCount"),
	)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
