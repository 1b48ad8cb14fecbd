package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"azmig/internal/rules"
)

// ReportSink aggregates analyzed resources and writes a markdown summary on
// Close: severity totals, the full blocker list, and the rules that fired
// most often.
type ReportSink struct {
	path    string
	file    *os.File
	mu      sync.Mutex
	results []rules.AnalyzedResource
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{path: path, file: f}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ar, ok := v.(rules.AnalyzedResource); ok {
		s.results = append(s.results, ar)
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("# Migration Readiness Report\n\n")

	scenario := ""
	if len(s.results) > 0 {
		scenario = string(s.results[0].Scenario)
	}
	fmt.Fprintf(&b, "Scenario: `%s`  \nResources assessed: %d\n\n", scenario, len(s.results))

	// Severity totals, worst first.
	counts := map[rules.Severity]int{}
	for _, ar := range s.results {
		counts[ar.MigrationStatus]++
	}
	b.WriteString("## Summary\n\n")
	b.WriteString("| Status | Resources |\n|---|---|\n")
	for _, sev := range []rules.Severity{rules.SeverityBlocker, rules.SeverityCritical, rules.SeverityWarning, rules.SeverityInfo, rules.SeverityReady} {
		fmt.Fprintf(&b, "| %s | %d |\n", sev, counts[sev])
	}
	b.WriteString("\n")

	s.writeBlockerSection(&b)
	s.writeTopRules(&b)
	s.writeDowntimeSection(&b)

	_, writeErr := s.file.WriteString(b.String())
	if closeErr := s.file.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	return writeErr
}

func (s *ReportSink) writeBlockerSection(b *strings.Builder) {
	var blocked []rules.AnalyzedResource
	for _, ar := range s.results {
		if ar.MigrationStatus == rules.SeverityBlocker {
			blocked = append(blocked, ar)
		}
	}
	if len(blocked) == 0 {
		return
	}
	sort.Slice(blocked, func(i, j int) bool { return blocked[i].ID < blocked[j].ID })

	b.WriteString("## Blockers\n\n")
	for _, ar := range blocked {
		fmt.Fprintf(b, "### %s (`%s`)\n\n", ar.Name, ar.Type)
		fmt.Fprintf(b, "Resource group `%s`, subscription `%s`.\n\n", ar.ResourceGroup, ar.SubscriptionName)
		for _, issue := range ar.Issues {
			if issue.Severity != rules.SeverityBlocker {
				continue
			}
			fmt.Fprintf(b, "- **%s**: %s", issue.RuleID, issue.Message)
			if issue.Remediation != "" {
				fmt.Fprintf(b, " Remediation: %s", issue.Remediation)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (s *ReportSink) writeTopRules(b *strings.Builder) {
	type ruleCount struct {
		id    string
		count int
	}
	byRule := map[string]int{}
	for _, ar := range s.results {
		for _, issue := range ar.Issues {
			byRule[issue.RuleID]++
		}
	}
	if len(byRule) == 0 {
		return
	}
	counts := make([]ruleCount, 0, len(byRule))
	for id, n := range byRule {
		counts = append(counts, ruleCount{id, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].id < counts[j].id
	})

	b.WriteString("## Most frequent findings\n\n")
	b.WriteString("| Rule | Occurrences |\n|---|---|\n")
	for i, rc := range counts {
		if i == 10 {
			break
		}
		fmt.Fprintf(b, "| %s | %d |\n", rc.id, rc.count)
	}
	b.WriteString("\n")
}

func (s *ReportSink) writeDowntimeSection(b *strings.Builder) {
	var names []string
	for _, ar := range s.results {
		for _, issue := range ar.Issues {
			if issue.DowntimeRisk {
				names = append(names, fmt.Sprintf("%s (`%s`)", ar.Name, ar.Type))
				break
			}
		}
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)
	b.WriteString("## Downtime risk\n\n")
	for _, n := range names {
		fmt.Fprintf(b, "- %s\n", n)
	}
	b.WriteString("\n")
}
