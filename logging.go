package bossfx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level is a zerolog level. Only debug through error are emitted here.
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// ParseLevel accepts zerolog level names in any case. Empty means info.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, nil
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return l, nil
}

type Logger interface {
	Enabled(level Level) bool
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes debug and info events to one stream and warnings and
// errors to another, one JSON object per line. Events below the minimum
// level are dropped.
type DefaultLogger struct {
	mu  sync.Mutex
	out zerolog.Logger
	err zerolog.Logger
}

func NewDefaultLogger(prefix string, min Level) *DefaultLogger {
	return NewWriterLogger(prefix, min, os.Stdout, os.Stderr)
}

func NewWriterLogger(prefix string, min Level, out, errOut io.Writer) *DefaultLogger {
	return &DefaultLogger{
		out: newZerolog(out, prefix, min),
		err: newZerolog(errOut, prefix, min),
	}
}

func newZerolog(w io.Writer, prefix string, min Level) zerolog.Logger {
	ctx := zerolog.New(w).Level(min).With().Timestamp()
	if prefix != "" {
		ctx = ctx.Str("module", prefix)
	}
	return ctx.Logger()
}

func (l *DefaultLogger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.out.GetLevel()
}

func (l *DefaultLogger) SetLevel(min Level) {
	l.mu.Lock()
	l.out = l.out.Level(min)
	l.err = l.err.Level(min)
	l.mu.Unlock()
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Debug().Msgf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Info().Msgf(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err.Warn().Msgf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err.Error().Msgf(format, args...)
}

// LoggingModule installs a logger as a resource. Level is a level name,
// empty for info. With Out set every level goes to Out; the terminal
// renderer owns stdout, so the demo logs to a file.
type LoggingModule struct {
	Prefix string
	Level  string
	Out    io.Writer
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	level, err := ParseLevel(m.Level)
	var logger *DefaultLogger
	if m.Out != nil {
		logger = NewWriterLogger(m.Prefix, level, m.Out, m.Out)
	} else {
		logger = NewDefaultLogger(m.Prefix, level)
	}
	if err != nil {
		logger.Warnf("%v, using info", err)
	}
	cmd.AddResources(logger)
}

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Enabled(Level) bool    { return false }
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Logger returns the first Logger resource added to the app, or a no-op
// logger. Never nil.
func (app *App) Logger() Logger {
	if app == nil || app.logger == nil {
		return NewNopLogger()
	}
	return app.logger
}
