package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"azmig/internal/rules"
)

func TestNewFileSinkFormatInference(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		format  string
		wantErr bool
	}{
		{"explicit json", filepath.Join(dir, "out.dat"), "json", false},
		{"inferred json", filepath.Join(dir, "out.json"), "", false},
		{"inferred ndjson", filepath.Join(dir, "out.ndjson"), "", false},
		{"inferred jsonl", filepath.Join(dir, "out.jsonl"), "", false},
		{"unknown extension", filepath.Join(dir, "out.txt"), "", true},
		{"unsupported format", filepath.Join(dir, "out.bin"), "xml", true},
		{"empty path", "", "json", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := NewFileSink(tt.path, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = sink.Close()
		})
	}
}

func TestFileSinkJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := sink.Write(Event{Type: "run.started"}); err != nil {
		t.Fatal(err)
	}
	if err := sink.Write(analyzed(rules.SeverityBlocker)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var results []rules.AnalyzedResource
	if err := json.Unmarshal(raw, &results); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(results) != 1 || results[0].MigrationStatus != rules.SeverityBlocker {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestFileSinkNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.ndjson")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := sink.Write(Event{Type: "run.started", Resources: 1}); err != nil {
		t.Fatal(err)
	}
	if err := sink.Write(analyzed(rules.SeverityReady)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Write(Event{Type: "run.finished", ExitCode: 0}); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), raw)
	}
	var event Event
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatal(err)
	}
	if event.Type != "resource.analyzed" {
		t.Errorf("middle line type = %q", event.Type)
	}
}
