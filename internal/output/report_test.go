package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"azmig/internal/rules"
)

func TestReportSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	sink, err := NewReportSink(path)
	if err != nil {
		t.Fatal(err)
	}

	results := []rules.AnalyzedResource{
		{
			ID: "/s/1", Name: "sql1", Type: "microsoft.sql/servers",
			ResourceGroup: "rg", SubscriptionName: "Production",
			Scenario:        rules.ScenarioSubscription,
			MigrationStatus: rules.SeverityBlocker,
			Issues: []rules.Issue{
				{RuleID: "sub-sql-server", Severity: rules.SeverityBlocker, Message: "SQL servers cannot move", Remediation: "Export and re-import the databases.", DowntimeRisk: true},
			},
		},
		{
			ID: "/s/2", Name: "web1", Type: "microsoft.web/sites",
			ResourceGroup: "rg", SubscriptionName: "Production",
			Scenario:        rules.ScenarioSubscription,
			MigrationStatus: rules.SeverityWarning,
			Issues: []rules.Issue{
				{RuleID: "sub-web-app", Severity: rules.SeverityWarning, Message: "app settings need review"},
			},
		},
		{
			ID: "/s/3", Name: "vm1", Type: "microsoft.compute/virtualmachines",
			ResourceGroup: "rg", SubscriptionName: "Production",
			Scenario:        rules.ScenarioSubscription,
			MigrationStatus: rules.SeverityReady,
		},
	}
	// Lifecycle events must not count as resources.
	if err := sink.Write(Event{Type: "run.started"}); err != nil {
		t.Fatal(err)
	}
	for _, ar := range results {
		if err := sink.Write(ar); err != nil {
			t.Fatal(err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	report := string(raw)

	for _, want := range []string{
		"# Migration Readiness Report",
		"Scenario: `cross-subscription`",
		"Resources assessed: 3",
		"| Blocker | 1 |",
		"| Warning | 1 |",
		"| Ready | 1 |",
		"## Blockers",
		"### sql1 (`microsoft.sql/servers`)",
		"**sub-sql-server**: SQL servers cannot move Remediation: Export and re-import the databases.",
		"## Most frequent findings",
		"| sub-sql-server | 1 |",
		"## Downtime risk",
		"- sql1 (`microsoft.sql/servers`)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if _, downtime, found := strings.Cut(report, "## Downtime risk"); found && strings.Contains(downtime, "web1") {
		t.Error("downtime section should only list resources with downtime-risk issues")
	}
}

func TestReportSinkRequiresPath(t *testing.T) {
	if _, err := NewReportSink(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
