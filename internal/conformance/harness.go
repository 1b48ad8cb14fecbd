package conformance

import (
	"context"
	"net/http"
	"os"
	"time"

	"azmig/internal/engine"
	"azmig/internal/logging"
	"azmig/internal/rules"

	"github.com/google/uuid"
)

const (
	defaultChunkSize   = 20
	defaultLinkTimeout = 10 * time.Second
)

// Options tunes a harness run. The zero value selects sensible defaults.
type Options struct {
	// MatrixPath overrides DefaultMatrixPath.
	MatrixPath string

	// Client is the HTTP client for link checks. Its timeout is overridden
	// per request by LinkTimeout.
	Client *http.Client

	// ChunkSize bounds concurrent outbound link checks.
	ChunkSize int

	// LinkTimeout is the per-request timeout for one link check.
	LinkTimeout time.Duration

	// SkipLinks disables the link-health section entirely.
	SkipLinks bool
}

// Harness replays the reference matrix through the analyzer and verifies the
// corpus's documentation links. A run never aborts on discrepancies: they
// accumulate into the report.
type Harness struct {
	corpus   *rules.Corpus
	analyzer *engine.Analyzer
	opts     Options
}

func NewHarness(corpus *rules.Corpus, opts Options) *Harness {
	if opts.MatrixPath == "" {
		opts.MatrixPath = DefaultMatrixPath
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.LinkTimeout <= 0 {
		opts.LinkTimeout = defaultLinkTimeout
	}
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	return &Harness{
		corpus:   corpus,
		analyzer: engine.NewAnalyzer(corpus),
		opts:     opts,
	}
}

// Run executes both diagnostics sections and returns the combined report.
func (h *Harness) Run(ctx context.Context) Report {
	report := Report{RunID: uuid.NewString()}
	report.Logic = h.runLogic()
	if !h.opts.SkipLinks {
		report.Links = h.checkLinks(ctx)
	}
	return report
}

// runLogic checks every matrix row against the analyzer. Each row yields
// three checks, one per move scenario the matrix covers.
func (h *Harness) runLogic() LogicSummary {
	rows, err := LoadMatrix(h.opts.MatrixPath)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Warn().Str("path", h.opts.MatrixPath).Msg("reference matrix not found, skipping logic conformance")
			return LogicSummary{Skipped: true}
		}
		logging.Logger.Error().Err(err).Str("path", h.opts.MatrixPath).Msg("reference matrix unreadable, skipping logic conformance")
		return LogicSummary{Skipped: true}
	}

	var summary LogicSummary
	scenarios := []rules.Scenario{rules.ScenarioResourceGroup, rules.ScenarioSubscription, rules.ScenarioRegion}
	for _, row := range rows {
		mock := mockResource(row)
		for _, scenario := range scenarios {
			summary.Total++
			analyzed := h.analyzer.Analyze(mock, scenario)
			if ok := verdictMeetsExpectation(row, scenario, analyzed.MigrationStatus); ok {
				summary.Passed++
				continue
			}
			summary.Failed++
			summary.Failures = append(summary.Failures, LogicFailure{
				Row:          row.Line,
				ResourceType: row.FullType(),
				Scenario:     scenario,
				Expected:     expectedLabel(row, scenario),
				Actual:       analyzed.MigrationStatus.String(),
			})
		}
	}
	return summary
}

// verdictMeetsExpectation encodes the check asymmetry: a matrix cell that
// says the move is supported always passes, even if the engine blocks it.
// Only "should block but the engine didn't" counts as a failure. Resource-group and subscription moves must
// block with exactly Blocker; region moves always have a redeployment
// workaround, so their blocked bucket is Critical or Warning.
func verdictMeetsExpectation(row MatrixRow, scenario rules.Scenario, verdict rules.Severity) bool {
	if !row.ShouldBlock(scenario) {
		return true
	}
	if scenario == rules.ScenarioRegion {
		return verdict == rules.SeverityCritical || verdict == rules.SeverityWarning
	}
	return verdict == rules.SeverityBlocker
}

func expectedLabel(row MatrixRow, scenario rules.Scenario) string {
	if scenario == rules.ScenarioRegion {
		return "Critical or Warning (matrix: " + row.Expectations[scenario] + ")"
	}
	return "Blocker (matrix: " + row.Expectations[scenario] + ")"
}
