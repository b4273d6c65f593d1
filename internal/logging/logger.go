// Package logging provides categorized file-based logging for groupctl.
// Logs are written to the configured directory with one file per category
// per day. When debug mode is off nothing is written at all, so a normal
// run leaves no files behind.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config, preconditions
	CategoryAPI       Category = "api"       // Canvas API calls
	CategoryRoster    Category = "roster"    // Roster parsing
	CategoryMatch     Category = "match"     // Leader name resolution
	CategoryProvision Category = "provision" // Group provisioning workflow
)

// Options controls where and whether logs are written.
type Options struct {
	Enabled bool
	Dir     string
	Level   string // debug, info, warn, error
}

// Log levels
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	opts      Options
	optsMu    sync.RWMutex
	logLevel  = LevelInfo
)

// Initialize sets up the logging directory from options. Should be called
// once at startup; a no-op when logging is disabled.
func Initialize(o Options) error {
	optsMu.Lock()
	opts = o
	switch o.Level {
	case "debug":
		logLevel = LevelDebug
	case "info", "":
		logLevel = LevelInfo
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	optsMu.Unlock()

	if !o.Enabled {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("log directory required")
	}
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== groupctl logging initialized ===")
	boot.Info("Logs directory: %s", o.Dir)
	boot.Info("Log level: %s", o.Level)
	return nil
}

func enabled() bool {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts.Enabled && opts.Dir != ""
}

// Get returns (or creates) a logger for the given category. Returns a
// no-op logger when logging is disabled.
func Get(category Category) *Logger {
	if !enabled() {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s.log", date, category)
	logPath := filepath.Join(opts.Dir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message (only if level <= debug).
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message (only if level <= info).
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message (only if level <= warn).
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message (always logged if logger exists).
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// BootError logs error to the boot category
func BootError(format string, args ...interface{}) {
	Get(CategoryBoot).Error(format, args...)
}

// API logs to the api category
func API(format string, args ...interface{}) {
	Get(CategoryAPI).Info(format, args...)
}

// APIDebug logs debug to the api category
func APIDebug(format string, args ...interface{}) {
	Get(CategoryAPI).Debug(format, args...)
}

// APIError logs error to the api category
func APIError(format string, args ...interface{}) {
	Get(CategoryAPI).Error(format, args...)
}

// Roster logs to the roster category
func Roster(format string, args ...interface{}) {
	Get(CategoryRoster).Info(format, args...)
}

// RosterDebug logs debug to the roster category
func RosterDebug(format string, args ...interface{}) {
	Get(CategoryRoster).Debug(format, args...)
}

// RosterError logs error to the roster category
func RosterError(format string, args ...interface{}) {
	Get(CategoryRoster).Error(format, args...)
}

// Match logs to the match category
func Match(format string, args ...interface{}) {
	Get(CategoryMatch).Info(format, args...)
}

// MatchDebug logs debug to the match category
func MatchDebug(format string, args ...interface{}) {
	Get(CategoryMatch).Debug(format, args...)
}

// Provision logs to the provision category
func Provision(format string, args ...interface{}) {
	Get(CategoryProvision).Info(format, args...)
}

// ProvisionDebug logs debug to the provision category
func ProvisionDebug(format string, args ...interface{}) {
	Get(CategoryProvision).Debug(format, args...)
}

// ProvisionWarn logs warning to the provision category
func ProvisionWarn(format string, args ...interface{}) {
	Get(CategoryProvision).Warn(format, args...)
}

// ProvisionError logs error to the provision category
func ProvisionError(format string, args ...interface{}) {
	Get(CategoryProvision).Error(format, args...)
}

// =============================================================================
// RUN ID TRACING
// =============================================================================

// RunLogger provides run-scoped logging with a correlation ID, so lines
// from different runs against the same instance can be told apart.
type RunLogger struct {
	logger *Logger
	runID  string
}

// WithRunID creates a run-scoped logger.
func WithRunID(category Category, runID string) *RunLogger {
	return &RunLogger{logger: Get(category), runID: runID}
}

func (r *RunLogger) Info(format string, args ...interface{}) {
	if r.logger.logger == nil || logLevel > LevelInfo {
		return
	}
	r.logger.logger.Printf("[INFO] [run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

func (r *RunLogger) Warn(format string, args ...interface{}) {
	if r.logger.logger == nil || logLevel > LevelWarn {
		return
	}
	r.logger.logger.Printf("[WARN] [run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

func (r *RunLogger) Error(format string, args ...interface{}) {
	if r.logger.logger == nil {
		return
	}
	r.logger.logger.Printf("[ERROR] [run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

// =============================================================================
// TIMING HELPERS
// =============================================================================

// Timer helps measure operation duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}
