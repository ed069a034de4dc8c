package common

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// LevelOK marks a completed step. It sorts between Info and Warn so it is
// shown whenever informational output is.
const LevelOK = slog.Level(2)

// LoggingOpts configures SetupLogger.
type LoggingOpts struct {
	Debug   bool
	JSON    bool
	Service string
	Version string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// SetupLogger builds the process logger. JSON output is used when requested,
// coloured status lines when writing to a terminal, and logfmt otherwise.
func SetupLogger(opts *LoggingOpts) (log *slog.Logger) {
	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: logLevel, ReplaceAttr: replaceLevelName}
	switch {
	case opts.JSON:
		log = slog.New(slog.NewJSONHandler(output, handlerOpts))
	case isTerminal(output):
		// status lines stay short on a terminal, no service/version tags
		return slog.New(NewConsoleHandler(output, logLevel))
	default:
		log = slog.New(slog.NewTextHandler(output, handlerOpts))
	}

	if opts.Service != "" {
		log = log.With("service", opts.Service)
	}
	if opts.Version != "" {
		log = log.With("version", opts.Version)
	}
	return log
}

// OK logs msg at LevelOK.
func OK(log *slog.Logger, msg string, args ...any) {
	log.Log(context.Background(), LevelOK, msg, args...)
}

func replaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) != 0 {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelOK {
		a.Value = slog.StringValue("OK")
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
