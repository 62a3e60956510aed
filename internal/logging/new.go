package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by New.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options controls logger construction.
type Options struct {
	// Level is the minimum level: debug, info, warn, error. Defaults to info.
	Level string
	// Format is one of FormatText (slog), FormatJSON or FormatConsole (zerolog).
	Format string
	// Output defaults to os.Stderr so log lines never mix with REPL output.
	Output io.Writer
}

// New builds a Logger from opts. Unknown formats fall back to FormatText.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case FormatJSON:
		l := zerolog.New(out).Level(zerologLevel(opts.Level)).Hook(timestampHook{now: time.Now})
		return NewZerologLogger(l)
	case FormatConsole:
		w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		return NewZerologLogger(zerolog.New(w).Level(zerologLevel(opts.Level)).With().Timestamp().Logger())
	default:
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h))
	}
}

// timestampHook adds an RFC 3339 UTC timestamp with nanoseconds to every
// event. zerolog's own Timestamp() formats with the package-level
// TimeFieldFormat, which New leaves alone.
type timestampHook struct {
	now func() time.Time
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(zerolog.TimestampFieldName, h.now().UTC().Format(time.RFC3339Nano))
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
