package rules

// Issue is one firing rule's finding for one resource. It copies the rule's
// output fields so downstream consumers never need the corpus to render it.
type Issue struct {
	RuleID        string   `json:"ruleId"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	Impact        string   `json:"impact,omitempty"`
	Remediation   string   `json:"remediation,omitempty"`
	DowntimeRisk  bool     `json:"downtimeRisk"`
	ReferenceLink string   `json:"referenceLink,omitempty"`
}

// AnalyzedResource is the per-resource verdict: identity, the worst severity
// found, and every issue that fired, in corpus order. Callers that want
// severity ordering must sort.
type AnalyzedResource struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	ResourceGroup    string   `json:"resourceGroup"`
	Location         string   `json:"location"`
	SubscriptionID   string   `json:"subscriptionId"`
	SubscriptionName string   `json:"subscriptionName"`
	Scenario         Scenario `json:"scenario"`
	MigrationStatus  Severity `json:"migrationStatus"`
	Issues           []Issue  `json:"issues"`
}
