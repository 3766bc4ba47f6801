package console_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/console"
	"github.com/rocketscienceinc/connectfour/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("Reads lines until the input ends", func(t *testing.T) {
		// Given: a console with two lines of input
		_, st := suite.New(t, "first", "second")

		// When: reading three times
		first, err := st.Console.ReadLine()
		require.NoError(t, err)
		second, err := st.Console.ReadLine()
		require.NoError(t, err)
		_, err = st.Console.ReadLine()

		// Then: the lines come back in order, then ErrInputClosed
		assert.Equal(t, "first", first)
		assert.Equal(t, "second", second)
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Oversized line is skipped and the next line is read", func(t *testing.T) {
		// Given: a line far beyond the limit followed by a regular one
		_, st := suite.New(t, strings.Repeat("x", 70000), "4 4")

		// When: reading twice
		_, tooLong := st.Console.ReadLine()
		next, err := st.Console.ReadLine()

		// Then: the long line is rejected and the console keeps reading
		assert.ErrorIs(t, tooLong, apperror.ErrLineTooLong)
		assert.NotErrorIs(t, tooLong, apperror.ErrInputClosed)
		require.NoError(t, err)
		assert.Equal(t, "4 4", next)
	})

	t.Run("Line of exactly the maximum length is accepted", func(t *testing.T) {
		// Given: a line at the limit
		long := strings.Repeat("7", console.MaxLineLength)
		_, st := suite.New(t, long)

		// When: reading it
		line, err := st.Console.ReadLine()

		// Then: it is returned whole
		require.NoError(t, err)
		assert.Equal(t, long, line)
	})

	t.Run("Last line without a terminator is returned", func(t *testing.T) {
		// Given: input that ends without a newline
		term := console.New(strings.NewReader("3\r\n5"), &bytes.Buffer{})

		// When: reading three times
		first, err := term.ReadLine()
		require.NoError(t, err)
		second, err := term.ReadLine()
		require.NoError(t, err)
		_, err = term.ReadLine()

		// Then: CRLF is stripped, the tail is kept, then ErrInputClosed
		assert.Equal(t, "3", first)
		assert.Equal(t, "5", second)
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Read failure is not reported as closed input", func(t *testing.T) {
		// Given: a console over a broken reader
		term := console.New(failingReader{}, &bytes.Buffer{})

		// When: reading a line
		_, err := term.ReadLine()

		// Then: the read error is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, err.Error(), "broken pipe")
	})
}

func TestConsole_Write(t *testing.T) {
	// Given: a console writing into a buffer
	out := &bytes.Buffer{}
	term := console.New(strings.NewReader(""), out)

	// When: fragments and lines are written
	term.Write("%c", 'x')
	term.Write("%s", "y")
	term.WriteLine("")
	term.WriteLine("%s WIN!", "Reds")

	// Then: formatting is applied and lines are terminated
	assert.Equal(t, "xy\nReds WIN!\n", out.String())
}

func TestConsole_WriteLine_Concurrent(t *testing.T) {
	// Given: a console shared by several writers
	out := &bytes.Buffer{}
	term := console.New(strings.NewReader(""), out)

	// When: lines are written from many goroutines
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			term.WriteLine("CTRL+C detected, terminating")
		}()
	}
	wg.Wait()

	// Then: every line arrives whole
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 16)
	for _, line := range lines {
		assert.Equal(t, "CTRL+C detected, terminating", line)
	}
}

func TestDimensionReader_Read(t *testing.T) {
	t.Run("Reads rows then columns", func(t *testing.T) {
		// Given: a line with rows first
		_, st := suite.New(t, "6 7")
		reader := console.NewDimensionReader(st.Console, st.Console)

		// When: dimensions are read
		columns, rows, err := reader.Read()

		// Then: they are returned as columns, rows
		require.NoError(t, err)
		assert.Equal(t, 7, columns)
		assert.Equal(t, 6, rows)
		assert.Empty(t, st.Output.String())
	})

	t.Run("Skips blank lines and retries on bad input", func(t *testing.T) {
		// Given: blank, malformed and finally valid lines
		_, st := suite.New(t,
			"",
			"   ",
			"5",
			"1 2 3",
			"x 5",
			"5 y",
			"  5 \t 4 ",
		)
		reader := console.NewDimensionReader(st.Console, st.Console)

		// When: dimensions are read
		columns, rows, err := reader.Read()

		// Then: the first valid line wins and each bad line was explained
		require.NoError(t, err)
		assert.Equal(t, 4, columns)
		assert.Equal(t, 5, rows)
		assert.Equal(t, []string{
			"Invalid entry: please enter two numbers separated by a white space",
			"Invalid entry: please enter two numbers separated by a white space",
			"Invalid entry: the 'number of rows' cannot be parsed to number",
			"Invalid entry: the 'number of columns' cannot be parsed to number",
		}, st.Lines())
	})

	t.Run("Oversized line is an invalid entry", func(t *testing.T) {
		// Given: a line over 64 KiB followed by valid dimensions
		_, st := suite.New(t, strings.Repeat("x", 70000), "4 4")
		reader := console.NewDimensionReader(st.Console, st.Console)

		// When: dimensions are read
		columns, rows, err := reader.Read()

		// Then: the long line is explained and the next one is used
		require.NoError(t, err)
		assert.Equal(t, 4, columns)
		assert.Equal(t, 4, rows)
		assert.Equal(t, []string{"Invalid entry: the line is too long"}, st.Lines())
	})

	t.Run("Out of range values are returned as is", func(t *testing.T) {
		// Given: a line with huge numbers
		_, st := suite.New(t, "100 -3")
		reader := console.NewDimensionReader(st.Console, st.Console)

		// When: dimensions are read
		columns, rows, err := reader.Read()

		// Then: bounds are left to the caller
		require.NoError(t, err)
		assert.Equal(t, -3, columns)
		assert.Equal(t, 100, rows)
	})

	t.Run("Closed input", func(t *testing.T) {
		// Given: no input at all
		_, st := suite.New(t)
		reader := console.NewDimensionReader(st.Console, st.Console)

		// When: dimensions are read
		_, _, err := reader.Read()

		// Then: ErrInputClosed is returned
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestTurnReader_Read(t *testing.T) {
	t.Run("Retries until a number is entered", func(t *testing.T) {
		// Given: blank, text and numeric lines
		_, st := suite.New(t, "", "left", "1.5", " 3 ")
		reader := console.NewTurnReader(st.Console, st.Console)

		// When: a turn is read
		column, err := reader.Read()

		// Then: the number is returned after two complaints
		require.NoError(t, err)
		assert.Equal(t, 3, column)
		assert.Equal(t, []string{
			"Invalid entry: the 'turn' cannot be parsed to number",
			"Invalid entry: the 'turn' cannot be parsed to number",
		}, st.Lines())
	})

	t.Run("Oversized line is an invalid entry", func(t *testing.T) {
		// Given: a huge line of digits followed by a column number
		_, st := suite.New(t, strings.Repeat("1", 70000), "2")
		reader := console.NewTurnReader(st.Console, st.Console)

		// When: a turn is read
		column, err := reader.Read()

		// Then: the long line is explained and the next one is used
		require.NoError(t, err)
		assert.Equal(t, 2, column)
		assert.Equal(t, []string{"Invalid entry: the line is too long"}, st.Lines())
	})

	t.Run("Closed input", func(t *testing.T) {
		// Given: only unparsable input
		_, st := suite.New(t, "abc")
		reader := console.NewTurnReader(st.Console, st.Console)

		// When: a turn is read
		_, err := reader.Read()

		// Then: ErrInputClosed is returned once the lines run out
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
