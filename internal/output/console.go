package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"azmig/internal/rules"

	"github.com/fatih/color"
)

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	results         []rules.AnalyzedResource // for JSON array output
	allowedStatuses map[string]bool
}

// NewConsoleSink writes human or machine output to w (stdout when nil).
// filterStatuses, when non-empty, restricts which migration statuses are
// shown (case-insensitive status names).
func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer: w,
		format: format,
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToLower(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.allowedStatuses) > 0 {
		if ar, ok := v.(rules.AnalyzedResource); ok {
			if !s.allowedStatuses[strings.ToLower(ar.MigrationStatus.String())] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		ar, ok := v.(rules.AnalyzedResource)
		if !ok {
			// Ignore lifecycle events in JSON console mode.
			return nil
		}
		s.results = append(s.results, ar)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case rules.AnalyzedResource:
			if err := encoder.Encode(eventFromResult(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	default:
		return s.writeText(v)
	}
}

func (s *ConsoleSink) writeText(v any) error {
	switch t := v.(type) {
	case Event:
		switch t.Type {
		case "run.started":
			_, err := fmt.Fprintf(s.writer, "Assessing %d resources against %d rules (%s)\n", t.Resources, t.Rules, t.Scenario)
			return err
		case "run.finished":
			_, err := fmt.Fprintln(s.writer)
			return err
		}
		return nil
	case rules.AnalyzedResource:
		statusColor(t.MigrationStatus).Fprintf(s.writer, "%-8s", t.MigrationStatus)
		if _, err := fmt.Fprintf(s.writer, " %s  %s (%s)\n", t.Type, t.Name, t.ResourceGroup); err != nil {
			return err
		}
		for _, issue := range t.Issues {
			if _, err := fmt.Fprintf(s.writer, "         - [%s] %s: %s\n", issue.Severity, issue.RuleID, issue.Message); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func statusColor(sev rules.Severity) *color.Color {
	switch sev {
	case rules.SeverityBlocker:
		return color.New(color.FgRed, color.Bold)
	case rules.SeverityCritical:
		return color.New(color.FgRed)
	case rules.SeverityWarning:
		return color.New(color.FgYellow)
	case rules.SeverityInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s.results)
	}
	return nil
}
