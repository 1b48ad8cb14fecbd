// Package rulesets holds the built-in rule corpus, one source file per
// migration scenario. Sources are plain data: the corpus is assembled
// explicitly at startup via rules.NewCorpus(rulesets.All()...), never through
// package init side effects.
package rulesets

import "azmig/internal/rules"

// All returns the built-in rule sources in load order. Order is preserved by
// the corpus and therefore by per-resource issue lists.
func All() []rules.Source {
	return []rules.Source{
		TenantRules(),
		SubscriptionRules(),
		ResourceGroupRules(),
		RegionRules(),
	}
}
