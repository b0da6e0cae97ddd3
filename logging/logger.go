package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger provides structured logging for the line planning core.
type Logger struct {
	*slog.Logger
	level slog.Level
}

// LogLevel represents different logging levels.
type LogLevel int

const (
	// LevelDebug provides detailed debugging information.
	LevelDebug LogLevel = iota
	// LevelInfo provides general informational messages.
	LevelInfo
	// LevelWarn provides warning messages for potentially problematic situations.
	LevelWarn
	// LevelError provides error messages for serious problems.
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
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
		return "UNKNOWN"
	}
}

// ParseLogLevel maps a config-file level name ("debug", "info", "warn",
// "error", case-insensitively) to a LogLevel, defaulting to LevelInfo
// for any unrecognised value.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ToSlogLevel converts LogLevel to slog.Level.
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerConfig holds configuration for logger creation.
type LoggerConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Format specifies the output format ("json" or "text").
	Format string
	// Output specifies the output destination.
	Output io.Writer
	// IncludeSource adds source code information to log entries.
	IncludeSource bool
	// Component identifies the logging component.
	Component string
}

// NewLogger creates a new structured logger with the specified configuration.
func NewLogger(config LoggerConfig) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	if config.Format == "" {
		config.Format = "text"
	}

	if config.Component == "" {
		config.Component = "lineplanning"
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.IncludeSource,
	}

	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	logger := slog.New(handler).With("component", config.Component)

	return &Logger{
		Logger: logger,
		level:  config.Level.ToSlogLevel(),
	}
}

// NewDefaultLogger creates a logger with sensible defaults.
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerConfig{
		Level:         LevelInfo,
		Format:        "text",
		Output:        os.Stdout,
		IncludeSource: false,
		Component:     "lineplanning",
	})
}

// NewJSONLogger creates a logger that outputs JSON format.
func NewJSONLogger(level LogLevel) *Logger {
	return NewLogger(LoggerConfig{
		Level:         level,
		Format:        "json",
		Output:        os.Stdout,
		IncludeSource: false,
		Component:     "lineplanning",
	})
}

// NewDebugLogger creates a logger with debug level and source information.
func NewDebugLogger() *Logger {
	return NewLogger(LoggerConfig{
		Level:         LevelDebug,
		Format:        "text",
		Output:        os.Stdout,
		IncludeSource: true,
		Component:     "lineplanning",
	})
}

// WithContext returns a logger with context values.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{
		l.With("context", ctx.Value("request_id")),
		l.level,
	}
}

// WithScenario returns a logger with scenario identification context.
func (l *Logger) WithScenario(lineCount, stationCount int) *Logger {
	return &Logger{
		l.With(
			"line_count", lineCount,
			"station_count", stationCount,
		),
		l.level,
	}
}

// WithLine returns a logger with bus line context.
func (l *Logger) WithLine(lineNr int, lineName string) *Logger {
	return &Logger{
		l.With(
			"line_nr", lineNr,
			"line_name", lineName,
		),
		l.level,
	}
}

// WithError returns a logger with error context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		l.With("error", err.Error()),
		l.level,
	}
}

// WithDuration returns a logger with duration context.
func (l *Logger) WithDuration(operation string, duration time.Duration) *Logger {
	return &Logger{
		l.With(
			"operation", operation,
			"duration_ms", duration.Milliseconds(),
		),
		l.level,
	}
}

// BuildStart logs the start of LPN construction.
func (l *Logger) BuildStart(lineCount, walkCount int) {
	l.Info("building line planning network",
		"line_count", lineCount,
		"walk_count", walkCount,
		"timestamp", time.Now().Format(time.RFC3339),
	)
}

// BuildComplete logs LPN construction completion.
func (l *Logger) BuildComplete(duration time.Duration, nodeCount, linkCount int) {
	l.Info("line planning network built",
		"duration_ms", duration.Milliseconds(),
		"node_count", nodeCount,
		"link_count", linkCount,
	)
}

// AssembleStart logs the start of MILP assembly.
func (l *Logger) AssembleStart(originCount, edgeCount int) {
	l.Debug("assembling line planning problem",
		"origin_count", originCount,
		"edge_count", edgeCount,
	)
}

// AssembleComplete logs MILP assembly completion.
func (l *Logger) AssembleComplete(duration time.Duration, variableCount, constraintCount int) {
	l.Info("line planning problem assembled",
		"duration_ms", duration.Milliseconds(),
		"variable_count", variableCount,
		"constraint_count", constraintCount,
	)
}

// SolveStart logs handing the model off to the external solver.
func (l *Logger) SolveStart() {
	l.Info("handing model to solver", "timestamp", time.Now().Format(time.RFC3339))
}

// SolveComplete logs the solver outcome.
func (l *Logger) SolveComplete(duration time.Duration, status string) {
	l.Info("solver returned",
		"duration_ms", duration.Milliseconds(),
		"status", status,
	)
}

// SolverInfeasible logs an infeasible outcome at warn level.
func (l *Logger) SolverInfeasible(lpDumpPath string) {
	l.Warn("solver reported infeasible model", "lp_dump", lpDumpPath)
}

// ConfigurationLoaded logs successful configuration loading.
func (l *Logger) ConfigurationLoaded(configPath string, lineCount int) {
	l.Info("configuration loaded",
		"config_path", configPath,
		"line_count", lineCount,
	)
}

// IsLevelEnabled checks if a log level is enabled.
func (l *Logger) IsLevelEnabled(level LogLevel) bool {
	return l.level <= level.ToSlogLevel()
}

// Global logger instance for convenience.
var defaultLogger = NewDefaultLogger()

// SetDefaultLogger sets the global default logger.
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the global default logger.
func GetDefaultLogger() *Logger {
	return defaultLogger
}

// Debug logs a debug message using the default logger.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message using the default logger.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message using the default logger.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message using the default logger.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
