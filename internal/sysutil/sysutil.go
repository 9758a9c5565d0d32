// Package sysutil holds process-level helpers used during startup:
// translating configuration strings into zerolog levels and wiring the
// optional pretty console writer for local development.
package sysutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLogLevel applies the named level to the global zerolog logger.
// Unknown or empty values fall back to info. "warning" is accepted as an
// alias for "warn"; matching ignores case and surrounding whitespace.
func SetLogLevel(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// ConfigureLogOutput routes the global logger either to a human-readable
// console writer (pretty) or to plain JSON. A nil w means stderr; the tests
// pass a buffer to capture output.
func ConfigureLogOutput(pretty bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = log.Output(w)
}

// IsTruthy interprets common affirmative strings from the environment.
// "1", "true", "yes", "y", and "on" count as true, ignoring case and
// surrounding whitespace; everything else is false.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
