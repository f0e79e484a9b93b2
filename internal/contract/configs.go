package contract

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gitcrew/gitcrew/schema"
)

// Default values for configuration.
const (
	DefaultChartFile = "result.html"
	DefaultPrecision = 2
	MaxPrecision     = 4
)

// DefaultWorkers is the default number of concurrent extraction workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (config file, env, flags). Viper unmarshals into this struct; positional
// arguments are attached separately.
type ConfigRawInput struct {
	Paths      []string          // Positional repository/directory paths
	StartStr   string            `mapstructure:"start"`
	EndStr     string            `mapstructure:"end"`
	Title      string            `mapstructure:"title"`
	Output     string            `mapstructure:"output"`
	OutputFile string            `mapstructure:"output-file"`
	Workers    int               `mapstructure:"workers"`
	Precision  int               `mapstructure:"precision"`
	Color      string            `mapstructure:"color"`
	Aliases    map[string]string `mapstructure:"aliases"`
	BotEmails  []string          `mapstructure:"bot-emails"`
}

// Config holds the final, validated runtime configuration.
type Config struct {
	Paths      []string  // Repository or directory paths to resolve
	StartDate  time.Time // Zero means unbounded
	EndDate    time.Time // Zero means unbounded
	StartStr   string    // Raw bound passed through to git --since
	EndStr     string    // Raw bound passed through to git --until
	Title      string
	Output     schema.OutputMode
	OutputFile string
	Workers    int
	Precision  int
	UseColors  bool

	// Rule configuration, read-only after startup.
	Aliases   map[string]string // Author name -> canonical identity
	BotEmails []string          // Author emails whose commits are filtered out
}

// Clone returns a shallow copy of the configuration with its own paths
// slice, so per-request overrides never leak into the base config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Paths = append([]string(nil), c.Paths...)
	return &clone
}

// ProcessAndValidate parses and validates the raw input, populating cfg.
// It is the single funnel between flag/env/file input and the rest of the
// program.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if len(input.Paths) == 0 {
		return fmt.Errorf("at least one repository path is required")
	}
	cfg.Paths = input.Paths

	start, err := ParseDateArg(input.StartStr, now)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDateArg(input.EndStr, now)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s precedes start date %s", input.EndStr, input.StartStr)
	}
	cfg.StartDate = start
	cfg.EndDate = end
	cfg.StartStr = input.StartStr
	cfg.EndStr = input.EndStr

	cfg.Title = input.Title

	output := schema.OutputMode(input.Output)
	if input.Output == "" {
		output = schema.TextOut
	}
	if !output.IsValid() {
		return fmt.Errorf("invalid output mode %q (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output

	cfg.OutputFile = input.OutputFile

	cfg.Workers = input.Workers
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	if input.Color != "" {
		useColors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid color setting: %w", err)
		}
		cfg.UseColors = useColors
	}

	cfg.Aliases = input.Aliases
	cfg.BotEmails = input.BotEmails

	return nil
}
