package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Console reads the scripted lines and writes into Output.
	Console *console.Console
	Output  *bytes.Buffer
}

// New - returns a context bound to the test and a console fed with the given input lines.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(strings.NewReader(input), output),
		Output:  output,
	}
}

// Lines - everything written to the console so far, split by line.
func (that *Suite) Lines() []string {
	return strings.Split(strings.TrimRight(that.Output.String(), "\n"), "\n")
}
