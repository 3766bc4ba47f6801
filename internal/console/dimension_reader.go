package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// DimensionReader - reads "rows columns" from a single line, re-reading until the line parses.
type DimensionReader struct {
	input  InputService
	output OutputService
}

func NewDimensionReader(input InputService, output OutputService) *DimensionReader {
	return &DimensionReader{
		input:  input,
		output: output,
	}
}

// Read - returns the dimensions as entered. Bounds are not checked here.
func (that *DimensionReader) Read() (int, int, error) {
	for {
		line, err := that.input.ReadLine()
		if errors.Is(err, apperror.ErrLineTooLong) {
			that.output.WriteLine("Invalid entry: the line is too long")
			continue
		}
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read dimensions: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if len(fields) != 2 {
			that.output.WriteLine("Invalid entry: please enter two numbers separated by a white space")
			continue
		}

		rows, err := strconv.Atoi(fields[0])
		if err != nil {
			that.output.WriteLine("Invalid entry: the 'number of rows' cannot be parsed to number")
			continue
		}

		columns, err := strconv.Atoi(fields[1])
		if err != nil {
			that.output.WriteLine("Invalid entry: the 'number of columns' cannot be parsed to number")
			continue
		}

		return columns, rows, nil
	}
}
