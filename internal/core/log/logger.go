// File: logger.go
// Title: Structured Logger Implementation
// Description: Implements a structured, leveled logger with contextual
//              fields, JSON and text formats, and an optional rotating file
//              sink. A package-level default logger serves CLI-wide logging;
//              commands derive named child loggers from it.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields represents a set of contextual key-value pairs
type Fields map[string]interface{}

// Entry represents a single log entry before formatting
type Entry struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Message   string
	Fields    Fields
	Error     error
}

// Config holds logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// FileRotation configures the rotating file sink
type FileRotation struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger is a structured, leveled logger
type Logger struct {
	mu     sync.Mutex
	level  Level
	format Format
	output io.Writer
	name   string
	fields Fields

	exit func(int) // overridable for tests
}

// New creates a logger with defaults (info level, text format, stderr)
func New() *Logger {
	return &Logger{
		level:  LevelInfo,
		format: FormatText,
		output: os.Stderr,
		fields: make(Fields),
		exit:   os.Exit,
	}
}

// NewWithConfig creates a logger from a Config
func NewWithConfig(config Config) *Logger {
	l := New()
	l.level = config.Level
	l.format = config.Format
	if config.Output != nil {
		l.output = config.Output
	}
	l.name = config.Name
	return l
}

// WithLevel returns a copy of the logger with the given level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy of the logger with the given format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.format = format
	return c
}

// WithOutput returns a copy of the logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithFile returns a copy of the logger writing to a rotating file sink
// in addition to its current output
func (l *Logger) WithFile(rotation FileRotation) *Logger {
	file := &lumberjack.Logger{
		Filename:   rotation.Path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}
	c := l.clone()
	c.output = io.MultiWriter(l.output, file)
	return c
}

// WithName returns a copy of the logger with the given name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy of the logger with an additional field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy of the logger with additional fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a message at fatal level and terminates the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	l.exit(1)
}

// ErrorWithErr logs a message together with an error at error level
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a message together with an error at warn level
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// IsLevelEnabled reports whether messages at the given level are emitted
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// log assembles an entry, formats it, and writes it to the output
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Logger:    l.name,
		Message:   message,
		Error:     err,
	}

	if len(l.fields) > 0 || len(fields) > 0 {
		entry.Fields = make(Fields, len(l.fields))
		for k, v := range l.fields {
			entry.Fields[k] = v
		}
		for _, f := range fields {
			for k, v := range f {
				entry.Fields[k] = v
			}
		}
	}

	line, fmtErr := formatterFor(l.format).Format(entry)
	if fmtErr != nil {
		return
	}
	l.output.Write(line)
}

// clone creates a copy of the logger with copied fields
func (l *Logger) clone() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   l.name,
		fields: make(Fields, len(l.fields)),
		exit:   l.exit,
	}
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return c
}

// Default logger management

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// GetDefault returns the package-level default logger
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Debug logs to the default logger at debug level
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs to the default logger at info level
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs to the default logger at warn level
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs to the default logger at error level
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}

// Fatal logs to the default logger at fatal level and exits
func Fatal(message string, fields ...Fields) {
	GetDefault().Fatal(message, fields...)
}
