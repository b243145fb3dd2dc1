// Package logx provides the logger interface used across the application
// and the setup of the standard logger with level filtering.
package logx

import (
	"io"
	"log"

	"github.com/hashicorp/logutils"
)

// Logger defines an interface for a single logger method.
type Logger interface {
	Printf(s string, args ...interface{})
}

// LoggerFunc is an adapter to use ordinary functions as Logger.
type LoggerFunc func(string, ...interface{})

// Printf calls the wrapped func.
func (f LoggerFunc) Printf(s string, args ...interface{}) { f(s, args...) }

// NopLogger logs literally nothing.
func NopLogger() Logger {
	return LoggerFunc(func(string, ...interface{}) {})
}

// Std returns the Logger over the standard logger.
func Std() Logger { return LoggerFunc(log.Printf) }

// Prefixed returns the Logger which puts the prefix right after the level
// tag of every message, i.e. "[WARN] prefix message".
func Prefixed(l Logger, prefix string) Logger {
	return LoggerFunc(func(s string, args ...interface{}) {
		lvl, msg := splitLevel(s)
		l.Printf(lvl+prefix+msg, args...)
	})
}

func splitLevel(s string) (lvl, msg string) {
	if len(s) == 0 || s[0] != '[' {
		return "", s
	}
	for i := 1; i < len(s); i++ {
		if s[i] == ']' {
			if i+1 < len(s) && s[i+1] == ' ' {
				return s[:i+2], s[i+2:]
			}
			return s[:i+1] + " ", s[i+1:]
		}
	}
	return "", s
}

// Setup sets the output of the standard logger to the level filter, which
// drops DEBUG messages unless dbg is set.
func Setup(dbg bool, w io.Writer) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: "INFO",
		Writer:   w,
	}

	logFlags := log.Ldate | log.Ltime

	if dbg {
		logFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
		filter.MinLevel = "DEBUG"
	}

	log.SetFlags(logFlags)
	log.SetOutput(filter)
}

