// Package logger provides named, colored loggers, one per subsystem.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/fatih/color"
)

// Logger writes leveled lines prefixed with the subsystem name, e.g.
//
//	[APP] 2025/02/08 11:02:03 [INFO] Router initialized
type Logger struct {
	out     *log.Logger
	verbose bool
	info    *color.Color
	warning *color.Color
	err     *color.Color
	debug   *color.Color
}

// New creates a logger for the named subsystem. The name is printed in nameColor.
func New(name string, nameColor color.Attribute, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	prefix := color.New(nameColor, color.Bold).Sprintf("[%s] ", name)
	return &Logger{
		out:     log.New(w, prefix, log.LstdFlags),
		info:    color.New(config.LogInfoColor),
		warning: color.New(config.LogWarningColor),
		err:     color.New(config.LogErrorColor),
		debug:   color.New(config.LogDebugColor),
	}, nil
}

// SetVerbose enables Debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(l.info, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(l.warning, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(l.err, "ERROR", msg)
}

// Debug logs a message only when the logger is verbose.
func (l *Logger) Debug(msg string) {
	if l.verbose {
		l.print(l.debug, "DEBUG", msg)
	}
}

func (l *Logger) print(c *color.Color, level, msg string) {
	l.out.Printf("%s %s", c.Sprintf("[%s]", level), msg)
}
