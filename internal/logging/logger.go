// Package logging provides the leveled console logger with an optional
// plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/backmassage/watchhabits/internal/config"
)

// TimeFormat is the timestamp layout for console and file lines.
const TimeFormat = "2006-01-02 15:04:05"

// successLevel sits between INFO and WARN so it is shown whenever INFO is.
const successLevel = log.InfoLevel + 1

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu      sync.Mutex
	console *log.Logger
	file    *os.File
	sink    *log.Logger
}

// NewLogger logs to stderr using profile for colors and opens cfg.LogFile
// for appending when set. DEBUG lines are shown only with cfg.Verbose. Call
// Close when done.
func NewLogger(cfg *config.Config, profile termenv.Profile) (*Logger, error) {
	l := newLogger(os.Stderr, profile, cfg.Verbose)
	if cfg.LogFile == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	l.sink = newCharm(f, termenv.Ascii, cfg.Verbose)
	return l, nil
}

func newLogger(w io.Writer, profile termenv.Profile, verbose bool) *Logger {
	return &Logger{console: newCharm(w, profile, verbose)}
}

func newCharm(w io.Writer, profile termenv.Profile, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	cl := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           level,
	})
	cl.SetColorProfile(profile)

	styles := log.DefaultStyles()
	styles.Levels[successLevel] = lipgloss.NewStyle().
		SetString("DONE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("10"))
	cl.SetStyles(styles)
	return cl
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.sink = nil
		return err
	}
	return nil
}

func (l *Logger) line(level log.Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console.Log(level, text)
	if l.sink != nil {
		l.sink.Log(level, text)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line(log.InfoLevel, fmt.Sprintf(format, args...))
}

// Success logs a completed step.
func (l *Logger) Success(format string, args ...any) {
	l.line(successLevel, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line(log.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...any) {
	l.line(log.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level; dropped unless the logger is verbose.
func (l *Logger) Debug(format string, args ...any) {
	l.line(log.DebugLevel, fmt.Sprintf(format, args...))
}

// Discard returns a logger that writes nowhere. Used by tests and callers
// that run a pipeline step quietly.
func Discard() *Logger {
	return newLogger(io.Discard, termenv.Ascii, false)
}
