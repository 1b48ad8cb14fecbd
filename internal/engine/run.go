package engine

import (
	"context"
	"fmt"
	"os"

	"azmig/internal/inventory"
	"azmig/internal/logging"
	"azmig/internal/output"
	"azmig/internal/rules"
)

// exitCodeForRun maps run outcomes to the CLI exit-code contract:
// 0 = every resource ready (informational findings allowed)
// 1 = blockers or criticals found
// 2 = warnings found, nothing worse
// 3 = fatal error (assessment did not run)
func exitCodeForRun(fatal bool, worst rules.Severity) int {
	switch {
	case fatal:
		return 3
	case worst >= rules.SeverityCritical:
		return 1
	case worst == rules.SeverityWarning:
		return 2
	default:
		return 0
	}
}

// Runner drives one assessment: inventory in, analyzed resources out to the
// configured sinks.
type Runner struct {
	analyzer *Analyzer
	corpus   *rules.Corpus
}

func NewRunner(corpus *rules.Corpus) *Runner {
	return &Runner{
		analyzer: NewAnalyzer(corpus),
		corpus:   corpus,
	}
}

// Run assesses every resource the provider yields under the given scenario,
// streaming results to outMgr, and returns the process exit code.
func (r *Runner) Run(ctx context.Context, provider inventory.Provider, scenario rules.Scenario, outMgr *output.Manager) int {
	resources, err := provider.List(ctx)
	if err != nil {
		logging.Logger.Error().Err(err).Msg("inventory discovery failed")
		fmt.Fprintln(os.Stderr, "Error listing inventory:", err)
		return exitCodeForRun(true, rules.SeverityReady)
	}

	_ = outMgr.Write(output.Event{
		Type:      "run.started",
		Resources: len(resources),
		Rules:     r.corpus.Len(),
		Scenario:  string(scenario),
	})

	worst := rules.SeverityReady
	for _, res := range resources {
		analyzed := r.analyzer.Analyze(res, scenario)
		worst = rules.MaxSeverity(worst, analyzed.MigrationStatus)
		logging.Logger.Debug().
			Str("resource", analyzed.ID).
			Str("status", analyzed.MigrationStatus.String()).
			Int("issues", len(analyzed.Issues)).
			Msg("resource analyzed")
		_ = outMgr.Write(analyzed)
	}

	code := exitCodeForRun(false, worst)
	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
