package calculation

import (
	"fmt"
	"io"
	"sync"
)

// Logger is a minimal logging interface for the plan engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// WriterLogger writes one line per message at or above Min to W.
type WriterLogger struct {
	W   io.Writer
	Min Level
	mu  sync.Mutex
}

// NewWriterLogger creates a WriterLogger.
func NewWriterLogger(w io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{W: w, Min: minLevel}
}

func (l *WriterLogger) logf(level Level, format string, args ...any) {
	if level < l.Min || l.W == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.W, "%-5s %s\n", level, fmt.Sprintf(format, args...))
}

func (l *WriterLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *WriterLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
