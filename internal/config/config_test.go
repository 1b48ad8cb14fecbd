package config

import (
	"reflect"
	"testing"
)

func TestValidate_AllowsKnownConsoleFormats(t *testing.T) {
	tests := []struct {
		name          string
		consoleFormat string
		want          string
	}{
		{name: "text", consoleFormat: "text", want: "text"},
		{name: "json", consoleFormat: "json", want: "json"},
		{name: "ndjson", consoleFormat: "ndjson", want: "ndjson"},
		{name: "case_and_spaces", consoleFormat: "  NDJSON  ", want: "ndjson"},
		{name: "empty_keeps_default_behavior", consoleFormat: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Output.ConsoleFormat = tt.consoleFormat
			if err := cfg.Validate(); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cfg.Output.ConsoleFormat != tt.want {
				t.Fatalf("expected console format %q, got %q", tt.want, cfg.Output.ConsoleFormat)
			}
		})
	}
}

func TestValidate_RejectsInvalidConsoleFormat(t *testing.T) {
	cfg := New()
	cfg.Output.ConsoleFormat = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RejectsInvalidOutFormat(t *testing.T) {
	cfg := New()
	cfg.Output.OutFormat = "csv"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RejectsNegativeDiagnosticsBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutateCfg func(cfg *Config)
	}{
		{
			name: "negative_chunk_size",
			mutateCfg: func(cfg *Config) {
				cfg.Diagnostics.LinkChunkSize = -1
			},
		},
		{
			name: "negative_timeout",
			mutateCfg: func(cfg *Config) {
				cfg.Diagnostics.LinkTimeoutSeconds = -5
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutateCfg(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestLoadFile_MergesOntoDefaults(t *testing.T) {
	cfg := New()
	if err := LoadFile("testdata/azmig.yaml", cfg); err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	if cfg.Analysis.Scenario != "cross-region" {
		t.Errorf("scenario = %q", cfg.Analysis.Scenario)
	}
	if cfg.Inventory.Path != "/exports/prod-inventory.json" {
		t.Errorf("inventory path = %q", cfg.Inventory.Path)
	}
	if cfg.Output.ConsoleFormat != "ndjson" {
		t.Errorf("console format = %q", cfg.Output.ConsoleFormat)
	}
	if want := []string{"Blocker", "Critical"}; !reflect.DeepEqual(cfg.Output.ConsoleFilterStatus, want) {
		t.Errorf("filter statuses = %v", cfg.Output.ConsoleFilterStatus)
	}
	if cfg.Output.Report != "report.md" {
		t.Errorf("report = %q", cfg.Output.Report)
	}
	if !cfg.Diagnostics.SkipLinks {
		t.Error("skip_links not applied")
	}
	if cfg.Diagnostics.LinkChunkSize != 5 {
		t.Errorf("link chunk size = %d", cfg.Diagnostics.LinkChunkSize)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Diagnostics.LinkTimeoutSeconds != 10 {
		t.Errorf("link timeout = %d, want default", cfg.Diagnostics.LinkTimeoutSeconds)
	}
	if cfg.Runtime.ListenAddr != ":8085" {
		t.Errorf("listen addr = %q, want default", cfg.Runtime.ListenAddr)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	cfg := New()
	if err := LoadFile("testdata/does-not-exist.yaml", cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
