package rules

import (
	"fmt"
	"strings"
)

// Scenario identifies one of the four supported migration modes.
type Scenario string

const (
	ScenarioTenant        Scenario = "cross-tenant"
	ScenarioSubscription  Scenario = "cross-subscription"
	ScenarioResourceGroup Scenario = "cross-resourcegroup"
	ScenarioRegion        Scenario = "cross-region"
)

// Scenarios lists all supported scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioTenant, ScenarioSubscription, ScenarioResourceGroup, ScenarioRegion}
}

func (s Scenario) Valid() bool {
	switch s {
	case ScenarioTenant, ScenarioSubscription, ScenarioResourceGroup, ScenarioRegion:
		return true
	}
	return false
}

// ParseScenario normalizes and validates a caller-supplied scenario string.
func ParseScenario(s string) (Scenario, error) {
	sc := Scenario(strings.ToLower(strings.TrimSpace(s)))
	if !sc.Valid() {
		known := Scenarios()
		names := make([]string, len(known))
		for i, k := range known {
			names[i] = string(k)
		}
		return "", fmt.Errorf("unknown scenario %q (want one of: %s)", s, strings.Join(names, ", "))
	}
	return sc, nil
}
