// Package logger owns the process-wide zerolog instance. Services log
// through values handed down from main; token validation keeps its real
// failure cause at debug level here while the API returns only the
// flattened error.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is built on first Init.
type Options struct {
	// Level is the minimum level: trace, debug, info, warn or error.
	// Unknown or empty values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Production
	// deployments leave this off and emit JSON lines.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	once     sync.Once
	instance zerolog.Logger
)

// Init builds the singleton on the first call and returns it; later calls
// return the already-built logger and ignore their options.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)

		instance = zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Caller().
			Logger()
	})
	return instance
}

// Component returns the singleton extended with a component field, for
// subsystems that want their log lines attributable.
func Component(name string) zerolog.Logger {
	return instance.With().Str("component", name).Logger()
}
