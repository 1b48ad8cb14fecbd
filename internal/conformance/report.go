// Package conformance validates the rule corpus against the reference
// move-support matrix and checks the health of every documentation link the
// corpus cites. It is an offline self-test: discrepancies come back as data
// in the report, never as errors.
package conformance

import "azmig/internal/rules"

// Report is the two-section diagnostics result. The sections are
// independent: a missing reference matrix skips the logic section without
// touching link health.
type Report struct {
	RunID string       `json:"runId"`
	Logic LogicSummary `json:"logic"`
	Links LinkSummary  `json:"links"`
}

type LogicSummary struct {
	// Skipped is true when the reference matrix could not be found.
	Skipped  bool           `json:"skipped"`
	Total    int            `json:"total"`
	Passed   int            `json:"passed"`
	Failed   int            `json:"failed"`
	Failures []LogicFailure `json:"failures,omitempty"`
}

// LogicFailure records one matrix cell the engine disagreed with.
type LogicFailure struct {
	Row          int            `json:"row"`
	ResourceType string         `json:"resourceType"`
	Scenario     rules.Scenario `json:"scenario"`
	Expected     string         `json:"expected"`
	Actual       string         `json:"actual"`
}

type LinkSummary struct {
	Checked  int          `json:"checked"`
	Broken   int          `json:"broken"`
	Findings []BrokenLink `json:"findings,omitempty"`
}

// BrokenLink records one unreachable reference URL together with every rule
// that cites it, grouped by the rule source that contributed each rule.
type BrokenLink struct {
	URL string `json:"url"`
	// RuleIDs lists citing rules as "source/ruleID".
	RuleIDs []string `json:"ruleIds"`
	Detail  string   `json:"detail"`
}
