package engine

import (
	"testing"

	"azmig/internal/resource"
	"azmig/internal/rules"
)

func ipResource(skuName string) resource.Resource {
	res := resource.Resource{
		ID:   "/subscriptions/s/resourceGroups/rg/providers/microsoft.network/publicipaddresses/ip1",
		Name: "ip1",
		Type: "microsoft.network/publicipaddresses",
	}
	if skuName != "" {
		res.Properties = map[string]any{"sku": map[string]any{"name": skuName}}
	}
	return res
}

func TestScenarioGate(t *testing.T) {
	rule := rules.Rule{
		ID:                  "r",
		ResourceTypePattern: "*",
		Scenario:            rules.ScenarioSubscription,
		Severity:            rules.SeverityBlocker,
		Message:             "m",
	}
	res := ipResource("")

	tests := []struct {
		requested rules.Scenario
		want      bool
	}{
		{rules.ScenarioSubscription, true},
		{rules.ScenarioResourceGroup, true}, // resource-group moves inherit subscription rules
		{rules.ScenarioRegion, false},
		{rules.ScenarioTenant, false},
	}
	for _, tt := range tests {
		if got := Matches(res, rule, tt.requested); got != tt.want {
			t.Errorf("subscription rule under %s: got %v, want %v", tt.requested, got, tt.want)
		}
	}

	// Inheritance is one-directional: a resource-group rule does not apply
	// to subscription moves.
	rgRule := rule
	rgRule.Scenario = rules.ScenarioResourceGroup
	if Matches(res, rgRule, rules.ScenarioSubscription) {
		t.Error("resource-group rule must not fire for subscription move")
	}
}

func TestTypeGate(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		pattern      string
		want         bool
	}{
		{"exact match", "microsoft.sql/servers", "microsoft.sql/servers", true},
		{"exact match case-insensitive", "Microsoft.Sql/Servers", "microsoft.sql/servers", true},
		{"bare wildcard", "microsoft.anything/at-all", "*", true},
		{"prefix wildcard matches child", "microsoft.sql/servers", "microsoft.sql/*", true},
		{"prefix wildcard matches grandchild", "microsoft.sql/servers/databases", "microsoft.sql/*", true},
		{"prefix wildcard matches prefix itself", "microsoft.sql", "microsoft.sql/*", true},
		{"prefix boundary guard", "microsoft.sqlvirtualmachine/sqlvirtualmachines", "microsoft.sql/*", false},
		{"prefix boundary guard plural", "microsoft.sqlvirtualmachines/servers", "microsoft.sql/*", false},
		{"different type", "microsoft.compute/disks", "microsoft.sql/servers", false},
		{"no suffix wildcard semantics", "microsoft.sql/serversextra", "microsoft.sql/servers", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeMatches(tt.resourceType, tt.pattern); got != tt.want {
				t.Errorf("typeMatches(%q, %q) = %v, want %v", tt.resourceType, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestConditionGate(t *testing.T) {
	base := rules.Rule{
		ID:                  "r",
		ResourceTypePattern: "microsoft.network/publicipaddresses",
		Scenario:            rules.ScenarioSubscription,
		Severity:            rules.SeverityBlocker,
		Message:             "m",
	}

	tests := []struct {
		name string
		cond rules.Condition
		res  resource.Resource
		want bool
	}{
		{
			"equals hit",
			rules.Condition{Field: "sku.name", Operator: rules.OpEquals, Value: "Standard"},
			ipResource("Standard"), true,
		},
		{
			"equals case-insensitive",
			rules.Condition{Field: "sku.name", Operator: rules.OpEquals, Value: "standard"},
			ipResource("STANDARD"), true,
		},
		{
			"equals miss",
			rules.Condition{Field: "sku.name", Operator: rules.OpEquals, Value: "Standard"},
			ipResource("Basic"), false,
		},
		{
			"not-equals hit",
			rules.Condition{Field: "sku.name", Operator: rules.OpNotEquals, Value: "Standard"},
			ipResource("Basic"), true,
		},
		{
			"contains hit",
			rules.Condition{Field: "sku.name", Operator: rules.OpContains, Value: "stand"},
			ipResource("Standard"), true,
		},
		{
			"contains miss",
			rules.Condition{Field: "sku.name", Operator: rules.OpContains, Value: "premium"},
			ipResource("Standard"), false,
		},
		{
			"missing field fails closed",
			rules.Condition{Field: "sku.name", Operator: rules.OpEquals, Value: "Standard"},
			ipResource(""), false,
		},
		{
			"missing field fails closed for not-equals",
			rules.Condition{Field: "sku.name", Operator: rules.OpNotEquals, Value: "Standard"},
			ipResource(""), false,
		},
		{
			"non-empty on populated list",
			rules.Condition{Field: "zones", Operator: rules.OpNonEmpty},
			resource.Resource{Type: "microsoft.network/publicipaddresses", Properties: map[string]any{"zones": []any{"1"}}}, true,
		},
		{
			"non-empty on empty list",
			rules.Condition{Field: "zones", Operator: rules.OpNonEmpty},
			resource.Resource{Type: "microsoft.network/publicipaddresses", Properties: map[string]any{"zones": []any{}}}, false,
		},
		{
			"non-empty on scalar fails",
			rules.Condition{Field: "sku.name", Operator: rules.OpNonEmpty},
			ipResource("Standard"), false,
		},
		{
			"unknown operator fails closed",
			rules.Condition{Field: "sku.name", Operator: "regex", Value: ".*"},
			ipResource("Standard"), false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			cond := tt.cond
			r.Condition = &cond
			if got := Matches(tt.res, r, rules.ScenarioSubscription); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionNumericEquality(t *testing.T) {
	// JSON decodes booleans and numbers as bool/float64; stringified
	// comparison keeps them comparable to rule operands.
	res := resource.Resource{
		Type: "microsoft.compute/snapshots",
		Properties: map[string]any{
			"properties": map[string]any{"incremental": true, "diskSizeGB": float64(128)},
		},
	}
	rule := rules.Rule{
		ID:                  "r",
		ResourceTypePattern: "microsoft.compute/snapshots",
		Scenario:            rules.ScenarioRegion,
		Severity:            rules.SeverityWarning,
		Message:             "m",
		Condition:           &rules.Condition{Field: "properties.incremental", Operator: rules.OpEquals, Value: true},
	}
	if !Matches(res, rule, rules.ScenarioRegion) {
		t.Error("boolean condition should match stringified")
	}

	rule.Condition = &rules.Condition{Field: "properties.diskSizeGB", Operator: rules.OpEquals, Value: 128}
	if !Matches(res, rule, rules.ScenarioRegion) {
		t.Error("numeric condition should match stringified")
	}
}
