package rules

import (
	"fmt"
	"strings"
)

// Source is one named collection of rules, typically a per-scenario file in
// the rulesets package. Sources are concatenated in the order given to
// NewCorpus; that order is preserved by the corpus and drives issue ordering.
type Source struct {
	Name  string
	Rules []Rule
}

// Corpus is the full rule set the engine evaluates against. It is built once
// at startup and never mutated afterwards, so it is safe to share across
// concurrent analysis requests without coordination.
type Corpus struct {
	rules    []Rule
	byID     map[string]int
	sourceOf map[string]string
}

// NewCorpus concatenates the given sources into a single corpus, validating
// rule shape as it goes. A malformed rule is a configuration defect and fails
// the load rather than surfacing later at match time.
func NewCorpus(sources ...Source) (*Corpus, error) {
	c := &Corpus{
		byID:     make(map[string]int),
		sourceOf: make(map[string]string),
	}
	for _, src := range sources {
		for _, r := range src.Rules {
			if err := validateRule(r); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
			if _, dup := c.byID[r.ID]; dup {
				return nil, fmt.Errorf("source %q: duplicate rule ID %q", src.Name, r.ID)
			}
			c.byID[r.ID] = len(c.rules)
			c.sourceOf[r.ID] = src.Name
			c.rules = append(c.rules, r)
		}
	}
	return c, nil
}

func validateRule(r Rule) error {
	if r.ID == "" {
		return fmt.Errorf("rule with empty ID (message: %q)", r.Message)
	}
	if !r.Scenario.Valid() {
		return fmt.Errorf("rule %q: unknown scenario %q", r.ID, r.Scenario)
	}
	if r.Severity < SeverityInfo || r.Severity > SeverityBlocker {
		return fmt.Errorf("rule %q: severity %q is not a valid rule severity", r.ID, r.Severity)
	}
	if err := validatePattern(r.ResourceTypePattern); err != nil {
		return fmt.Errorf("rule %q: %w", r.ID, err)
	}
	if r.Condition != nil {
		if r.Condition.Field == "" {
			return fmt.Errorf("rule %q: condition with empty field", r.ID)
		}
		if !r.Condition.Operator.Valid() {
			return fmt.Errorf("rule %q: unknown condition operator %q", r.ID, r.Condition.Operator)
		}
	}
	if r.Message == "" {
		return fmt.Errorf("rule %q: empty message", r.ID)
	}
	return nil
}

func validatePattern(p string) error {
	if p == "" {
		return fmt.Errorf("empty resource type pattern")
	}
	if p == "*" {
		return nil
	}
	if strings.HasSuffix(p, "/*") {
		prefix := strings.TrimSuffix(p, "/*")
		if prefix == "" || strings.ContainsRune(prefix, '*') {
			return fmt.Errorf("pattern %q: wildcard only allowed as \"*\" or trailing \"/*\"", p)
		}
		return nil
	}
	if strings.ContainsRune(p, '*') {
		return fmt.Errorf("pattern %q: wildcard only allowed as \"*\" or trailing \"/*\"", p)
	}
	if !strings.ContainsRune(p, '/') {
		return fmt.Errorf("pattern %q: want namespace/type form", p)
	}
	return nil
}

// Rules returns the corpus rules in load order. Callers must not mutate the
// returned slice.
func (c *Corpus) Rules() []Rule {
	return c.rules
}

func (c *Corpus) Len() int {
	return len(c.rules)
}

// ByID returns the rule with the given ID, if present.
func (c *Corpus) ByID(id string) (Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// SourceOf reports which source contributed the rule with the given ID.
func (c *Corpus) SourceOf(id string) string {
	return c.sourceOf[id]
}

// Resolve selects rules by a comma-separated list of rule IDs. An empty
// selector selects the whole corpus.
func (c *Corpus) Resolve(selector string) ([]Rule, error) {
	if selector == "" {
		return c.Rules(), nil
	}
	var selected []Rule
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		r, ok := c.ByID(id)
		if !ok {
			return nil, fmt.Errorf("rule not found: %s", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// Select returns a corpus narrowed to the rules the selector names, keeping
// source attribution. An empty selector returns the receiver unchanged.
func (c *Corpus) Select(selector string) (*Corpus, error) {
	if selector == "" {
		return c, nil
	}
	selected, err := c.Resolve(selector)
	if err != nil {
		return nil, err
	}
	sub := &Corpus{
		byID:     make(map[string]int),
		sourceOf: make(map[string]string),
	}
	for _, r := range selected {
		if _, dup := sub.byID[r.ID]; dup {
			continue
		}
		sub.byID[r.ID] = len(sub.rules)
		sub.sourceOf[r.ID] = c.sourceOf[r.ID]
		sub.rules = append(sub.rules, r)
	}
	return sub, nil
}
