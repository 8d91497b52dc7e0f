package logging

import (
	"fmt"
	"log"
	"os"
	"time"
)

// writeLog formats a line and routes it by severity: ERROR/FATAL to stderr,
// everything else to stdout.
func (l *Logger) writeLog(level, msg string, fields map[string]interface{}) {
	line := fmt.Sprintf("[%s] [%s] %s: %s", timestamp(), level, l.name, msg)

	if len(fields) > 0 {
		line += " |"
		for k, v := range fields {
			line += fmt.Sprintf(" %s=%v", k, v)
		}
	}

	if level == "ERROR" || level == "FATAL" {
		fmt.Fprintf(os.Stderr, "%s\n", line)
	} else {
		log.Println(line)
	}
}

func (l *Logger) logf(level, msg string, args ...interface{}) {
	l.writeLog(level, fmt.Sprintf(msg, args...), l.fields)
}

// timestamp returns an RFC3339 timestamp. LOG_TIMESTAMP overrides it for
// deterministic test output.
func timestamp() string {
	if override := os.Getenv("LOG_TIMESTAMP"); override != "" {
		return override
	}
	return time.Now().Format(time.RFC3339)
}
