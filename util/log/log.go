// package log defines a small leveled logger used across the savegame tools,
// following https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
//
// Warn* always outputs, Info* outputs on InfoLevel and above,
// Debug* outputs on DebugLevel only.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a logging level.
type Level int

const (
	InfoLevel  Level = iota // output Warn* and Info*
	DebugLevel              // output everything
)

// ParseLevel converts level name, "info" or "debug", into Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "info", "":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	}
	return InfoLevel, fmt.Errorf("log: unknown level %q", name)
}

func (lv Level) String() string {
	switch lv {
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	}
	return fmt.Sprintf("Level(%d)", int(lv))
}

// Prefixes placed right after the logger prefix.
const (
	WarnPrefix  = "WARN: "
	DebugPrefix = "DEBUG: "
)

// ErrOutputDiscardedByLevel indicates log output is discarded by level, e.g. Debug() with info level.
var ErrOutputDiscardedByLevel = errors.New("log output discarded by different log level")

// Logger writes leveled messages. Output errors are not returned from each call;
// the latest one is kept and can be retrieved by Err().
type Logger struct {
	logger *log.Logger

	mu          sync.Mutex
	level       Level
	internalErr error
}

// New constructs Logger with InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{logger: log.New(out, prefix, flag), level: InfoLevel}
}

func (l *Logger) output(calldepth int, need Level, prefix, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < need {
		l.internalErr = ErrOutputDiscardedByLevel
		return
	}
	l.internalErr = l.logger.Output(calldepth, prefix+msg)
}

func (l *Logger) Warn(v ...interface{}) { l.output(3, InfoLevel, WarnPrefix, fmt.Sprint(v...)) }
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(3, InfoLevel, WarnPrefix, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(v ...interface{})   { l.output(3, InfoLevel, "", fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{}) { l.output(3, InfoLevel, "", fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(3, InfoLevel, "", fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(v ...interface{}) { l.output(3, DebugLevel, DebugPrefix, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) {
	l.output(3, DebugLevel, DebugPrefix, fmt.Sprintln(v...))
}
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(3, DebugLevel, DebugPrefix, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetFlags(flag int)       { l.logger.SetFlags(flag) }
func (l *Logger) SetPrefix(prefix string) { l.logger.SetPrefix(prefix) }

// Err returns the result of the last output. A later successful output
// replaces an earlier error with nil.
//
//	logger.Info("1") --> something error
//	logger.Info("2") --> no erorr
//	logger.Err() --> nil
//
// A message discarded by level yields ErrOutputDiscardedByLevel.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.internalErr
}

const (
	// These flags are same as log package's.
	Ldate         = log.Ldate
	Ltime         = log.Ltime
	Lmicroseconds = log.Lmicroseconds
	Lshortfile    = log.Lshortfile
	LstdFlags     = log.LstdFlags
)

var std = New(os.Stderr, "", LstdFlags)

func Warn(v ...interface{})                 { std.output(3, InfoLevel, WarnPrefix, fmt.Sprint(v...)) }
func Warnf(format string, v ...interface{}) { std.output(3, InfoLevel, WarnPrefix, fmt.Sprintf(format, v...)) }
func Info(v ...interface{})                 { std.output(3, InfoLevel, "", fmt.Sprint(v...)) }
func Infoln(v ...interface{})               { std.output(3, InfoLevel, "", fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{}) { std.output(3, InfoLevel, "", fmt.Sprintf(format, v...)) }
func Debug(v ...interface{})                { std.output(3, DebugLevel, DebugPrefix, fmt.Sprint(v...)) }
func Debugln(v ...interface{})              { std.output(3, DebugLevel, DebugPrefix, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) {
	std.output(3, DebugLevel, DebugPrefix, fmt.Sprintf(format, v...))
}

func SetOutput(w io.Writer)   { std.SetOutput(w) }
func SetLevel(level Level)    { std.SetLevel(level) }
func GetLevel() Level         { return std.Level() }
func SetFlags(flag int)       { std.SetFlags(flag) }
func SetPrefix(prefix string) { std.SetPrefix(prefix) }
func Err() error              { return std.Err() }

// LimitWriter returns a Writer that writes to w
// but stops with EOF after n bytes.
// See https://go-review.googlesource.com/c/go/+/319593/12/src/internal/iointernal/limited_writer.go
func LimitWriter(w io.Writer, n int64) io.Writer { return &LimitedWriter{w, n} }

// A LimitedWriter writes to W but limits the amount of
// data written to just N bytes.
type LimitedWriter struct {
	W io.Writer // underlying writer
	N int64     // max bytes remaining
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.W.Write(p)
	l.N -= int64(n)
	return
}
