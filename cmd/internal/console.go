package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(stderr, msg, args...)
}

// Logger returns a console logger on stderr for diagnostic output.
// Unless verbose is set, everything logged to it is discarded.
func Logger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
