package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Logger is a small facade over the logging backend. Messages are snake_case
// event names; fields are key/value pairs.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	With(keyvals ...any) Logger
}

// Options controls logger construction.
type Options struct {
	// Out defaults to os.Stderr. Stdout is reserved for program output.
	Out io.Writer
	// Level is one of "debug", "info", "warn", "error". Defaults to "warn".
	Level string
	// Format is "auto" (default), "pretty" or "json". Auto picks pretty on a
	// TTY and json otherwise.
	Format string
	// ReportTimestamp defaults to true.
	ReportTimestamp *bool
}

// New constructs a Logger according to opts.
func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	cl := clog.NewWithOptions(out, clog.Options{})
	cl.SetLevel(parseLevel(opts.Level))
	cl.SetFormatter(chooseFormatter(out, opts.Format))
	cl.SetReportTimestamp(opts.ReportTimestamp == nil || *opts.ReportTimestamp)
	return &charmLogger{l: cl}
}

func chooseFormatter(w io.Writer, format string) clog.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return clog.JSONFormatter
	case "pretty", "text":
		return clog.TextFormatter
	default:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return clog.TextFormatter
		}
		return clog.JSONFormatter
	}
}

func parseLevel(s string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.WarnLevel
	}
}

type charmLogger struct{ l *clog.Logger }

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }
func (c *charmLogger) With(keyvals ...any) Logger {
	return &charmLogger{l: c.l.With(keyvals...)}
}

// Step emits started/ok/failed events for one unit of work with consistent keys.
type Step struct {
	logger   Logger
	action   string
	resource string
	started  time.Time
}

// StartStep logs a started event at debug level and returns a Step to be
// finished with OK or Fail. Stable keys: status, action, resource, duration_ms.
func StartStep(l Logger, action, resource string, extra ...any) *Step {
	s := &Step{logger: l, action: action, resource: resource, started: time.Now()}
	fields := append([]any{"status", "started", "action", action, "resource", resource}, extra...)
	l.Debug(action, fields...)
	return s
}

// OK logs successful completion.
func (s *Step) OK(changed bool, extra ...any) {
	fields := append([]any{
		"status", "ok",
		"action", s.action,
		"resource", s.resource,
		"changed", changed,
		"duration_ms", time.Since(s.started).Milliseconds(),
	}, extra...)
	s.logger.Debug(s.action, fields...)
}

// Fail logs the failure at error level and returns err unchanged.
func (s *Step) Fail(err error, extra ...any) error {
	fields := append([]any{
		"status", "failed",
		"action", s.action,
		"resource", s.resource,
		"changed", false,
		"duration_ms", time.Since(s.started).Milliseconds(),
	}, extra...)
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	s.logger.Error(s.action, fields...)
	return err
}

type ctxKey struct{}

// WithContext returns a derived context carrying the logger.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger from ctx or a no-op logger if absent.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return Nop()
	}
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return Nop()
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) With(...any) Logger   { return nopLogger{} }
