package output

import "azmig/internal/rules"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line):
// - run.started
// - resource.analyzed
// - run.finished
//
// JSON mode remains an aggregate array of rules.AnalyzedResource values.
type Event struct {
	Type string `json:"type"`
	*rules.AnalyzedResource
	Resources int    `json:"resources,omitempty"`
	Rules     int    `json:"rules,omitempty"`
	Scenario  string `json:"scenario,omitempty"`
	ExitCode  int    `json:"exit_code,omitempty"`
}

func eventFromResult(ar rules.AnalyzedResource) Event {
	return Event{Type: "resource.analyzed", Scenario: string(ar.Scenario), AnalyzedResource: &ar}
}
