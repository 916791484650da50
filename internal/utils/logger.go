package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Level orders log messages; messages below the logger's threshold are dropped.
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
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Logger writes leveled messages. Debug output is only emitted in verbose
// mode, which also adds timestamps and caller positions.
type Logger struct {
	mu        sync.RWMutex
	out       *log.Logger
	threshold Level
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// GetLogger returns the process-wide logger, writing to stderr.
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		globalLogger = NewLogger(os.Stderr, false)
	})
	return globalLogger
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, verbose bool) *Logger {
	l := &Logger{out: log.New(w, "", 0)}
	l.SetVerbose(verbose)
	return l
}

// SetVerbose switches debug output on or off.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if verbose {
		l.threshold = LevelDebug
		l.out.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		return
	}
	l.threshold = LevelInfo
	l.out.SetFlags(0)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.SetOutput(w)
}

func (l *Logger) IsVerbose() bool {
	return l.enabled(LevelDebug)
}

func (l *Logger) enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.threshold
}

// logf skips its own frame and the Logger method (or package helper) that
// called it, so Lshortfile names the real call site.
func (l *Logger) logf(depth int, level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.out.Output(depth+2, "["+level.String()+"] "+fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...interface{}) { l.logf(1, LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(1, LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(1, LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.logf(1, LevelError, format, args...) }

func Debugf(format string, args ...interface{}) { GetLogger().logf(1, LevelDebug, format, args...) }
func Infof(format string, args ...interface{})  { GetLogger().logf(1, LevelInfo, format, args...) }
func Warnf(format string, args ...interface{})  { GetLogger().logf(1, LevelWarn, format, args...) }
func Errorf(format string, args ...interface{}) { GetLogger().logf(1, LevelError, format, args...) }

// SetVerboseMode toggles debug output on the global logger (--verbose).
func SetVerboseMode(verbose bool) {
	GetLogger().SetVerbose(verbose)
}

// LogOperation runs fn, logging at debug level when it starts and how it
// ended, with the elapsed time.
func LogOperation(operation string, fn func() error) error {
	logger := GetLogger()
	logger.logf(1, LevelDebug, "Starting operation: %s", operation)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start).Round(time.Microsecond)

	if err != nil {
		logger.logf(1, LevelDebug, "Operation failed: %s - %v (%s)", operation, err, elapsed)
	} else {
		logger.logf(1, LevelDebug, "Operation completed: %s (%s)", operation, elapsed)
	}
	return err
}

// LogOperationf is LogOperation with a formatted operation name.
func LogOperationf(format string, fn func() error, args ...interface{}) error {
	return LogOperation(fmt.Sprintf(format, args...), fn)
}
