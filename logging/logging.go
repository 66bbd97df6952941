// Package logging builds the slog logger shared by the CLI and the server.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the log destinations.
type Options struct {
	Level   string    // debug, info, warn or error
	Writer  io.Writer // terminal output, stderr when nil
	File    string    // JSON log file, off when empty
	Journal bool      // also log to the systemd journal
}

// New returns a logger fanning out to every configured destination. The
// returned close function releases the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	closer := func() error { return nil }
	terminal := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	handlers := []slog.Handler{terminal}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// ParseLevel maps a level name to a slog level. The empty name is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// toJournalKey maps an attribute key to a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
