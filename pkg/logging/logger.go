package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when neither the CLI nor the environment sets a level.
const DefaultLevel = "warn"

// Prefix is written in front of every non-JSON log line.
const Prefix = "🎨 "

// ParseLevel splits a level spec into the hclog level name and whether JSON
// output was requested. "json" alone means JSON at info level.
func ParseLevel(spec string) (level string, jsonFormat bool) {
	spec = strings.TrimSpace(spec)
	if !strings.HasPrefix(spec, "json") {
		return spec, false
	}
	if _, rest, ok := strings.Cut(spec, ":"); ok && rest != "" {
		return rest, true
	}
	return "info", true
}

// ResolveLevel picks the effective level spec and reports where it came from.
// The CLI flag wins over the environment, which wins over DefaultLevel.
func ResolveLevel(cliLevel, envLevel string) (spec, source string) {
	switch {
	case cliLevel != "":
		return cliLevel, "CLI --log-level"
	case envLevel != "":
		return envLevel, "ICONSET_LOG_LEVEL"
	default:
		return DefaultLevel, "default"
	}
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, levelSpec string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level, jsonFormat := ParseLevel(levelSpec)
	if !jsonFormat {
		output = NewPrefixWriter(Prefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ValidateLevel rejects level specs hclog does not recognise.
func ValidateLevel(spec string) error {
	level, _ := ParseLevel(spec)
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q (use trace, debug, info, warn, error, off or json:<level>)", spec)
	}
	return nil
}

// OpenOutput returns the log destination: stderr when path is empty,
// otherwise the file at path opened for appending. The close func is never
// nil.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	return file, file.Close, nil
}
