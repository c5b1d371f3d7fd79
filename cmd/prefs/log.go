package main

import (
	"io"
	"log/slog"
	"os"
)

// logLevel is raised to debug by -v.
var logLevel = new(slog.LevelVar)

var theLog = newLog(os.Stderr, logLevel)

// newLog returns a text logger for terminal use: no timestamps, and
// the level is only shown when it is not INFO.
func newLog(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) != 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if a.Value.String() == slog.LevelInfo.String() {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
