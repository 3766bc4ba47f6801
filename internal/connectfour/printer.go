package connectfour

import "fmt"

type output interface {
	Write(format string, args ...any)
	WriteLine(format string, args ...any)
}

// BoardPrinter - renders a grid row by row, top row first.
type BoardPrinter struct {
	out   output
	empty rune
}

func NewBoardPrinter(out output, empty rune) *BoardPrinter {
	if empty == 0 {
		empty = DefaultEmptyCell
	}

	return &BoardPrinter{
		out:   out,
		empty: empty,
	}
}

func (that *BoardPrinter) Print(grid Grid) error {
	for rowIdx := 0; rowIdx < grid.Rows(); rowIdx++ {
		for columnIdx := 0; columnIdx < grid.Columns(); columnIdx++ {
			symbol, err := GetCellChar(grid, columnIdx, rowIdx, that.empty)
			if err != nil {
				return fmt.Errorf("failed to print board: %w", err)
			}

			that.out.Write("%c", symbol)
		}

		that.out.WriteLine("")
	}

	return nil
}
