// Package logging provides leveled, structured logging for the corpintel
// service.
//
// Initialize the logger once at startup, then request named loggers per
// component:
//
//	logging.Initialize("info")
//	logger := logging.GetLogger("orchestrator")
//	logger.Info("dispatching %d agents", n)
//
// Structured fields are preferred for anything that should be searchable:
//
//	logger.InfoWithFields("agent finished",
//	    logging.Field("intent", intent),
//	    logging.Field("duration_ms", elapsed.Milliseconds()),
//	)
//
// Loggers are immutable; WithField and WithFields return new instances and
// are safe to share across goroutines. Per-package level overrides support
// exact names and trailing wildcards ("intel.*").
package logging

import (
	"fmt"
	"strings"
	"sync"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// LogField is a structured logging field.
type LogField struct {
	Key   string
	Value interface{}
}

// Field creates a structured logging field.
func Field(key string, value interface{}) LogField {
	return LogField{Key: key, Value: value}
}

// Logger writes leveled log lines for one named component.
type Logger struct {
	level  LogLevel
	name   string
	fields map[string]interface{}
}

var (
	packageLevels = make(map[string]LogLevel)
	packageMu     sync.RWMutex
)

// SetPackageLogLevels configures per-package level overrides. Patterns like
// "intel.*" match every package under the "intel." prefix.
func SetPackageLogLevels(levels map[string]string) error {
	if levels == nil {
		return nil
	}

	parsed := make(map[string]LogLevel, len(levels))
	for pkg, levelStr := range levels {
		level, err := parseLevel(levelStr)
		if err != nil {
			return fmt.Errorf("invalid log level for package %q: %w", pkg, err)
		}
		parsed[pkg] = level
	}

	packageMu.Lock()
	packageLevels = parsed
	packageMu.Unlock()
	return nil
}

// packageLevelFor returns the override for a package name, or -1 if none.
// Exact matches win over wildcard matches; among wildcards the longest
// pattern wins.
func packageLevelFor(name string) LogLevel {
	packageMu.RLock()
	defer packageMu.RUnlock()

	if level, ok := packageLevels[name]; ok {
		return level
	}

	best := ""
	for pattern := range packageLevels {
		if !strings.HasSuffix(pattern, ".*") {
			continue
		}
		prefix := strings.TrimSuffix(pattern, ".*")
		if strings.HasPrefix(name, prefix+".") && len(pattern) > len(best) {
			best = pattern
		}
	}
	if best != "" {
		return packageLevels[best]
	}
	return LogLevel(-1)
}

func parseLevel(levelStr string) (LogLevel, error) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return -1, fmt.Errorf("invalid level: %s (must be DEBUG, INFO, WARN, ERROR, or FATAL)", levelStr)
	}
}

func cloneFields(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
