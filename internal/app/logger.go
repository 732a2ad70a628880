package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogEnvVar names a file that receives a JSON debug log.
// It takes precedence over the logFile config key.
const LogEnvVar = "UNITY_LOG_FILE"

// setupLogger returns a logger writing terse messages to stderr and, when
// logPath is set, every record at debug level as JSON to that file. If the file
// cannot be opened the console logger is still returned alongside the error.
func setupLogger(stderr io.Writer, level *slog.LevelVar, logPath string) (*slog.Logger, io.Closer, error) {
	console := &consoleHandler{w: stderr, level: level}
	if logPath == "" {
		return slog.New(console), nil, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(console), nil, err
	}
	file := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(&multiHandler{handlers: []slog.Handler{file, console}}), f, nil
}

// multiHandler sends each record to every handler that accepts its level.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Handler takes the record by value
func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *multiHandler) derive(fn func(slog.Handler) slog.Handler) *multiHandler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = fn(h)
	}
	return &multiHandler{handlers: hs}
}

// consoleHandler prints one line per record. Errors are always appended to the
// message; the component tag and other attributes appear only at debug level.
type consoleHandler struct {
	w         io.Writer
	level     *slog.LevelVar
	component string
	attrs     []slog.Attr
}

func (c *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

//nolint:gocritic // slog.Handler takes the record by value
func (c *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	debug := c.level.Level() <= slog.LevelDebug

	var b strings.Builder
	switch {
	case record.Level >= slog.LevelError:
		b.WriteString("Error: ")
	case record.Level >= slog.LevelWarn:
		b.WriteString("Warning: ")
	case debug && c.component != "":
		fmt.Fprintf(&b, "[%s] ", c.component)
	}
	b.WriteString(record.Message)

	write := func(a slog.Attr) bool {
		switch {
		case a.Key == "error" || a.Key == "err":
			fmt.Fprintf(&b, ": %v", a.Value)
		case debug:
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		}
		return true
	}
	for _, a := range c.attrs {
		write(a)
	}
	record.Attrs(write)

	b.WriteByte('\n')
	_, err := io.WriteString(c.w, b.String())
	return err
}

func (c *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &consoleHandler{w: c.w, level: c.level, component: c.component, attrs: append([]slog.Attr(nil), c.attrs...)}
	for _, a := range attrs {
		if a.Key == "component" {
			next.component = a.Value.String()
			continue
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (c *consoleHandler) WithGroup(_ string) slog.Handler {
	return c
}
