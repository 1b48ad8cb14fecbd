package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Analysis    Analysis
	Inventory   Inventory
	Output      Output
	Diagnostics Diagnostics
	Runtime     Runtime
}

type Analysis struct {
	// Scenario is the requested migration scenario (see --scenario).
	// One of: cross-tenant, cross-subscription, cross-resourcegroup, cross-region.
	Scenario string `mapstructure:"scenario"`

	// Rules narrows the assessment to a comma-separated list of rule IDs
	// (see --rules). Empty evaluates the whole corpus.
	Rules string `mapstructure:"rules"`
}

type Inventory struct {
	// Path is a JSON inventory export to assess (see --inventory).
	Path string `mapstructure:"path"`
}

type Output struct {
	// ConsoleFormat selects console rendering (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string `mapstructure:"console_format"`

	// ConsoleFilterStatus restricts console output to the given migration
	// statuses (see --console-filter-status).
	ConsoleFilterStatus []string `mapstructure:"console_filter_status"`

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool `mapstructure:"no_console"`

	// Out writes an aggregate JSON array or NDJSON stream to a file (see --out).
	Out string `mapstructure:"out"`

	// OutFormat forces the --out format instead of inferring it from the
	// file extension (see --out-format).
	OutFormat string `mapstructure:"out_format"`

	// Report writes a markdown summary report to a file (see --report).
	Report string `mapstructure:"report"`
}

type Diagnostics struct {
	// MatrixPath overrides the reference matrix location (see --matrix).
	MatrixPath string `mapstructure:"matrix_path"`

	// SkipLinks disables the outbound link-health section (see --skip-links).
	SkipLinks bool `mapstructure:"skip_links"`

	// LinkChunkSize bounds concurrent outbound link checks.
	LinkChunkSize int `mapstructure:"link_chunk_size"`

	// LinkTimeoutSeconds is the per-link request timeout.
	LinkTimeoutSeconds int `mapstructure:"link_timeout_seconds"`
}

type Runtime struct {
	// Verbose enables debug logging (see --verbose).
	Verbose bool `mapstructure:"verbose"`

	// ListenAddr is the diagnostics server bind address (see --addr).
	ListenAddr string `mapstructure:"listen_addr"`
}

func New() *Config {
	return &Config{
		Analysis: Analysis{Scenario: "cross-subscription"},
		Output:   Output{ConsoleFormat: "text"},
		Diagnostics: Diagnostics{
			LinkChunkSize:      20,
			LinkTimeoutSeconds: 10,
		},
		Runtime: Runtime{ListenAddr: ":8085"},
	}
}

// Validate normalizes enum fields in place and rejects values neither flags
// nor a config file should produce.
func (c *Config) Validate() error {
	c.Output.ConsoleFormat = strings.ToLower(strings.TrimSpace(c.Output.ConsoleFormat))
	switch c.Output.ConsoleFormat {
	case "", "text", "json", "ndjson":
	default:
		return fmt.Errorf("invalid console format %q (want text, json or ndjson)", c.Output.ConsoleFormat)
	}

	c.Output.OutFormat = strings.ToLower(strings.TrimSpace(c.Output.OutFormat))
	if c.Output.OutFormat != "" && c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
		return fmt.Errorf("invalid out format %q (want json or ndjson)", c.Output.OutFormat)
	}

	if c.Diagnostics.LinkChunkSize < 0 {
		return fmt.Errorf("link chunk size must not be negative")
	}
	if c.Diagnostics.LinkTimeoutSeconds < 0 {
		return fmt.Errorf("link timeout must not be negative")
	}
	return nil
}

// LoadFile merges values from a JSON or YAML config file onto cfg. Only keys
// present in the file are applied; everything else keeps its current value,
// so callers can layer file values under explicit flag values.
func LoadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
