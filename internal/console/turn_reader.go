package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// TurnReader - reads a column number, re-reading until the line parses.
type TurnReader struct {
	input  InputService
	output OutputService
}

func NewTurnReader(input InputService, output OutputService) *TurnReader {
	return &TurnReader{
		input:  input,
		output: output,
	}
}

func (that *TurnReader) Read() (int, error) {
	for {
		line, err := that.input.ReadLine()
		if errors.Is(err, apperror.ErrLineTooLong) {
			that.output.WriteLine("Invalid entry: the line is too long")
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read turn: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		column, err := strconv.Atoi(line)
		if err != nil {
			that.output.WriteLine("Invalid entry: the 'turn' cannot be parsed to number")
			continue
		}

		return column, nil
	}
}
