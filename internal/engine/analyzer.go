package engine

import (
	"strings"

	"azmig/internal/resource"
	"azmig/internal/rules"
)

// Analyzer applies the rule corpus to resource records. It holds only the
// immutable corpus, so one Analyzer serves any number of concurrent requests.
type Analyzer struct {
	corpus *rules.Corpus
}

func NewAnalyzer(corpus *rules.Corpus) *Analyzer {
	return &Analyzer{corpus: corpus}
}

// Analyze evaluates every corpus rule against the resource under the given
// scenario and reduces the firing rules to a single verdict. It is total:
// any structurally plausible record yields a verdict, missing optional
// fields included.
func (a *Analyzer) Analyze(res resource.Resource, scenario rules.Scenario) rules.AnalyzedResource {
	out := rules.AnalyzedResource{
		ID:               res.ID,
		Name:             res.Name,
		Type:             res.Type,
		ResourceGroup:    res.ResourceGroup,
		Location:         res.Location,
		SubscriptionID:   res.SubscriptionID,
		SubscriptionName: res.SubscriptionName,
		Scenario:         scenario,
		MigrationStatus:  rules.SeverityReady,
	}
	applyIdentityFallbacks(&out, res)

	for _, r := range a.corpus.Rules() {
		if !Matches(res, r, scenario) {
			continue
		}
		out.Issues = append(out.Issues, rules.Issue{
			RuleID:        r.ID,
			Severity:      r.Severity,
			Message:       r.Message,
			Impact:        r.Impact,
			Remediation:   r.Remediation,
			DowntimeRisk:  r.DowntimeRisk,
			ReferenceLink: r.ReferenceLink,
		})
	}

	for _, inj := range res.InjectedIssues {
		out.Issues = append(out.Issues, issueFromInjected(inj))
	}

	for _, issue := range out.Issues {
		out.MigrationStatus = rules.MaxSeverity(out.MigrationStatus, issue.Severity)
	}
	return out
}

// applyIdentityFallbacks fills missing identity fields with safe defaults so
// presentation never sees blank columns.
func applyIdentityFallbacks(out *rules.AnalyzedResource, res resource.Resource) {
	if out.SubscriptionName == "" {
		out.SubscriptionName = res.SubscriptionID
	}
	if out.ResourceGroup == "" {
		out.ResourceGroup = "(none)"
	}
	if out.Name == "" {
		if i := strings.LastIndexByte(res.ID, '/'); i >= 0 && i+1 < len(res.ID) {
			out.Name = res.ID[i+1:]
		} else {
			out.Name = res.ID
		}
	}
}

// issueFromInjected converts an externally attached finding. An injected
// severity the engine does not recognize degrades to Info rather than
// failing the analysis.
func issueFromInjected(inj resource.InjectedIssue) rules.Issue {
	sev, err := rules.ParseSeverity(inj.Severity)
	if err != nil || sev == rules.SeverityReady {
		sev = rules.SeverityInfo
	}
	return rules.Issue{
		RuleID:        "injected",
		Severity:      sev,
		Message:       inj.Message,
		Impact:        inj.Impact,
		Remediation:   inj.Remediation,
		DowntimeRisk:  inj.DowntimeRisk,
		ReferenceLink: inj.ReferenceLink,
	}
}
