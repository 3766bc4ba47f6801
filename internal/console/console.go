package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// MaxLineLength - longer lines are consumed and reported as ErrLineTooLong.
const MaxLineLength = 4096

// InputService - a blocking source of text lines.
type InputService interface {
	ReadLine() (string, error)
}

// OutputService - a sink for formatted text. Write failures are not reported.
type OutputService interface {
	Write(format string, args ...any)
	WriteLine(format string, args ...any)
}

// Console - line based input and output over a reader and a writer, usually stdin and stdout.
// Writes are safe for concurrent use, reads are not.
type Console struct {
	reader *bufio.Reader

	mu  sync.Mutex
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine - returns the next line without its terminator, or ErrInputClosed once the input is exhausted.
// A line longer than MaxLineLength is skipped entirely and ErrLineTooLong is returned.
func (that *Console) ReadLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", apperror.ErrInputClosed
			}
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: more than %d bytes", apperror.ErrLineTooLong, MaxLineLength)
	}

	return string(line), nil
}

func (that *Console) Write(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) WriteLine(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = fmt.Fprintf(that.out, format+"\n", args...)
}
