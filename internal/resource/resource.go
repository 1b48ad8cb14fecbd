// Package resource defines the resource record the engine analyzes: a fixed
// set of well-known identity fields plus an open map of provider-specific
// nested properties that rule conditions look into.
package resource

// Resource is one discovered cloud resource. The engine treats it as
// read-only; records are produced per analysis request by an inventory
// provider and discarded afterwards.
type Resource struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	ResourceGroup    string `json:"resourceGroup"`
	Location         string `json:"location"`
	SubscriptionID   string `json:"subscriptionId"`
	SubscriptionName string `json:"subscriptionName,omitempty"`

	// Properties holds the provider-specific attribute tree (sku, identity,
	// properties.* and anything else the discovery query returned). Rule
	// conditions resolve dotted paths against this map.
	Properties map[string]any `json:"properties,omitempty"`

	// InjectedIssues carries findings attached upstream of the engine, such
	// as a region-capability check marking the target region as unavailable.
	// The engine copies them into the analysis result untouched.
	InjectedIssues []InjectedIssue `json:"injectedIssues,omitempty"`
}

// InjectedIssue is an externally supplied finding in the same shape a rule
// produces, minus the rule identity.
type InjectedIssue struct {
	Severity      string `json:"severity"`
	Message       string `json:"message"`
	Impact        string `json:"impact,omitempty"`
	Remediation   string `json:"remediation,omitempty"`
	DowntimeRisk  bool   `json:"downtimeRisk"`
	ReferenceLink string `json:"referenceLink,omitempty"`
}
