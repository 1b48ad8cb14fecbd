package engine

import (
	"fmt"
	"reflect"
	"strings"

	"azmig/internal/resource"
	"azmig/internal/rules"
)

// Matches reports whether a rule fires for the given resource under the
// requested scenario. Three gates run in order (scenario, resource type,
// condition) and all must pass. Pure function, no side effects.
func Matches(res resource.Resource, rule rules.Rule, scenario rules.Scenario) bool {
	if !scenarioApplies(rule.Scenario, scenario) {
		return false
	}
	if !typeMatches(res.Type, rule.ResourceTypePattern) {
		return false
	}
	if rule.Condition != nil && !conditionHolds(res, *rule.Condition) {
		return false
	}
	return true
}

// scenarioApplies implements the single inheritance edge between scenarios:
// a resource-group move inherits every subscription-move rule, because the
// platform's move-validation constraints are the same for both. No other
// scenario pair inherits.
func scenarioApplies(ruleScenario, requested rules.Scenario) bool {
	if ruleScenario == requested {
		return true
	}
	return requested == rules.ScenarioResourceGroup && ruleScenario == rules.ScenarioSubscription
}

// typeMatches compares a resource type against a rule pattern,
// case-insensitively. A "prefix/*" pattern matches only at a path-segment
// boundary, so "microsoft.sql/*" matches "microsoft.sql/servers" but not
// "microsoft.sqlvirtualmachine/sqlvirtualmachines".
func typeMatches(resourceType, pattern string) bool {
	if pattern == "*" {
		return true
	}
	rt := strings.ToLower(resourceType)
	p := strings.ToLower(pattern)
	if rt == p {
		return true
	}
	if !strings.HasSuffix(p, "/*") {
		return false
	}
	prefix := strings.TrimSuffix(p, "/*")
	if !strings.HasPrefix(rt, prefix) {
		return false
	}
	return len(rt) == len(prefix) || rt[len(prefix)] == '/'
}

// conditionHolds evaluates a rule condition against the resource. A missing
// field means the rule is not applicable, so the condition fails closed. An
// unrecognized operator also fails closed to keep analysis total; the corpus
// loader rejects such rules up front, this is the match-time backstop.
func conditionHolds(res resource.Resource, cond rules.Condition) bool {
	val, ok := resource.Lookup(res, cond.Field)
	if !ok {
		return false
	}
	switch cond.Operator {
	case rules.OpEquals:
		return strings.EqualFold(stringify(val), stringify(cond.Value))
	case rules.OpNotEquals:
		return !strings.EqualFold(stringify(val), stringify(cond.Value))
	case rules.OpContains:
		return strings.Contains(strings.ToLower(stringify(val)), strings.ToLower(stringify(cond.Value)))
	case rules.OpNonEmpty:
		return hasElements(val)
	default:
		return false
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// hasElements reports whether v is a container with at least one element.
// Non-container values (strings included) never satisfy non-empty.
func hasElements(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return reflect.ValueOf(v).Len() > 0
	default:
		return false
	}
}
