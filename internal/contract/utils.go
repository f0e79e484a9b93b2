package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Colors for user-facing status output.
var (
	HeaderColor = color.New(color.FgCyan, color.Bold)
	WarnColor   = color.New(color.FgYellow)
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = WarnColor.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogRunHeader prints a one-line banner describing the run.
func LogRunHeader(cfg *Config, repoCount int) {
	rangeStr := "full history"
	if cfg.StartStr != "" || cfg.EndStr != "" {
		start := cfg.StartStr
		if start == "" {
			start = "beginning"
		}
		end := cfg.EndStr
		if end == "" {
			end = "now"
		}
		rangeStr = start + " to " + end
	}
	banner := fmt.Sprintf("gitcrew: %d repositories, %s, %d workers", repoCount, rangeStr, cfg.Workers)
	if cfg.UseColors {
		_, _ = HeaderColor.Fprintln(os.Stderr, banner)
	} else {
		_, _ = fmt.Fprintln(os.Stderr, banner)
	}
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
