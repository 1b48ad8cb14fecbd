package rulesets

import "azmig/internal/rules"

// ResourceGroupRules holds only the constraints specific to resource-group
// moves. The bulk of resource-group behavior comes from SubscriptionRules via
// scenario inheritance in the matcher; keep this source small.
func ResourceGroupRules() rules.Source {
	return rules.Source{
		Name: "resourcegroup",
		Rules: []rules.Rule{
			{
				ID:                  "rg-platform-managed",
				ResourceTypePattern: "*",
				Scenario:            rules.ScenarioResourceGroup,
				Condition:           &rules.Condition{Field: "managedBy", Operator: rules.OpContains, Value: "/providers/"},
				Severity:            rules.SeverityBlocker,
				Message:             "Resource is managed by another resource and cannot move on its own.",
				Impact:              "Move validation rejects platform-managed resources; moving them orphans the managing deployment.",
				Remediation:         "Move or redeploy the managing resource; the managed resource follows it.",
				ReferenceLink:       linkMoveLimits,
			},
			{
				ID:                  "rg-scoped-role-assignments",
				ResourceTypePattern: "*",
				Scenario:            rules.ScenarioResourceGroup,
				Severity:            rules.SeverityInfo,
				Message:             "Role assignments scoped to the source resource group do not follow the resource.",
				Remediation:         "Recreate group-scoped role assignments on the target resource group.",
				ReferenceLink:       linkMoveLimits,
			},
		},
	}
}
