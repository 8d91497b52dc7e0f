package logging

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	initOnce     sync.Once
	// exitFunc is called by Fatal. Overridable for tests.
	exitFunc = os.Exit
)

// Initialize sets up the global logger with the given default level and
// optional per-package overrides.
func Initialize(levelStr string, levels ...map[string]string) error {
	level, err := parseLevel(levelStr)
	if err != nil {
		level = INFO
	}

	globalLogger = &Logger{level: level, name: "corpintel"}

	if len(levels) > 0 && levels[0] != nil {
		return SetPackageLogLevels(levels[0])
	}
	return nil
}

// GetLogger returns a logger for the named component. The global logger is
// lazily initialized at INFO if Initialize was never called.
func GetLogger(name string) *Logger {
	initOnce.Do(func() {
		if globalLogger == nil {
			_ = Initialize("info")
		}
	})
	return &Logger{
		level:  globalLogger.level,
		name:   name,
		fields: make(map[string]interface{}),
	}
}

func (l *Logger) shouldLog(level LogLevel) bool {
	if pkgLevel := packageLevelFor(l.name); pkgLevel >= 0 {
		return level >= pkgLevel
	}
	return level >= l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.shouldLog(DEBUG) {
		l.logf("DEBUG", msg, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(INFO) {
		l.logf("INFO", msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(WARN) {
		l.logf("WARN", msg, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(ERROR) {
		l.logf("ERROR", msg, args...)
	}
}

// Fatal logs a fatal message and exits with code 1.
func (l *Logger) Fatal(msg string, args ...interface{}) {
	if l.shouldLog(FATAL) {
		l.logf("FATAL", msg, args...)
		exitFunc(1)
	}
}

// ErrorWithErr logs an error message with an error object appended.
func (l *Logger) ErrorWithErr(msg string, err error, args ...interface{}) {
	if l.shouldLog(ERROR) {
		args = append(args, err)
		l.logf("ERROR", msg+" - %v", args...)
	}
}

// WithName returns a new logger with a different component name.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{level: l.level, name: name, fields: make(map[string]interface{})}
}

// WithField returns a new logger carrying an extra persistent field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	next := &Logger{level: l.level, name: l.name, fields: cloneFields(l.fields)}
	next.fields[key] = value
	return next
}

// WithFields returns a new logger carrying extra persistent fields.
func (l *Logger) WithFields(fields ...LogField) *Logger {
	next := &Logger{level: l.level, name: l.name, fields: cloneFields(l.fields)}
	for _, f := range fields {
		next.fields[f.Key] = f.Value
	}
	return next
}

// DebugWithFields logs a debug message with structured fields.
func (l *Logger) DebugWithFields(msg string, fields ...LogField) {
	if l.shouldLog(DEBUG) {
		l.logWithFields("DEBUG", msg, fields...)
	}
}

// InfoWithFields logs an info message with structured fields.
func (l *Logger) InfoWithFields(msg string, fields ...LogField) {
	if l.shouldLog(INFO) {
		l.logWithFields("INFO", msg, fields...)
	}
}

// WarnWithFields logs a warning message with structured fields.
func (l *Logger) WarnWithFields(msg string, fields ...LogField) {
	if l.shouldLog(WARN) {
		l.logWithFields("WARN", msg, fields...)
	}
}

// ErrorWithFields logs an error message with structured fields.
func (l *Logger) ErrorWithFields(msg string, fields ...LogField) {
	if l.shouldLog(ERROR) {
		l.logWithFields("ERROR", msg, fields...)
	}
}

func (l *Logger) logWithFields(level, msg string, fields ...LogField) {
	merged := cloneFields(l.fields)
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	l.writeLog(level, msg, merged)
}
