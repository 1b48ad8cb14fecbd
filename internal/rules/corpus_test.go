package rules

import (
	"strings"
	"testing"
)

func validTestRule(id string) Rule {
	return Rule{
		ID:                  id,
		ResourceTypePattern: "microsoft.test/widgets",
		Scenario:            ScenarioSubscription,
		Severity:            SeverityWarning,
		Message:             "test rule",
	}
}

func TestNewCorpusPreservesOrder(t *testing.T) {
	corpus, err := NewCorpus(
		Source{Name: "first", Rules: []Rule{validTestRule("a"), validTestRule("b")}},
		Source{Name: "second", Rules: []Rule{validTestRule("c")}},
	)
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}

	var ids []string
	for _, r := range corpus.Rules() {
		ids = append(ids, r.ID)
	}
	if got := strings.Join(ids, ","); got != "a,b,c" {
		t.Errorf("corpus order = %s, want a,b,c", got)
	}

	if src := corpus.SourceOf("c"); src != "second" {
		t.Errorf("SourceOf(c) = %q, want second", src)
	}
	if _, ok := corpus.ByID("b"); !ok {
		t.Error("ByID(b) not found")
	}
}

func TestNewCorpusRejectsMalformedRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rule)
	}{
		{"empty id", func(r *Rule) { r.ID = "" }},
		{"unknown scenario", func(r *Rule) { r.Scenario = "cross-galaxy" }},
		{"ready severity", func(r *Rule) { r.Severity = SeverityReady }},
		{"out of range severity", func(r *Rule) { r.Severity = Severity(9) }},
		{"empty pattern", func(r *Rule) { r.ResourceTypePattern = "" }},
		{"embedded wildcard", func(r *Rule) { r.ResourceTypePattern = "microsoft.*/widgets" }},
		{"bare namespace", func(r *Rule) { r.ResourceTypePattern = "microsoft.test" }},
		{"condition without field", func(r *Rule) { r.Condition = &Condition{Operator: OpEquals, Value: "x"} }},
		{"unknown operator", func(r *Rule) { r.Condition = &Condition{Field: "sku.name", Operator: "matches-regex", Value: "x"} }},
		{"empty message", func(r *Rule) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validTestRule("bad")
			tt.mutate(&r)
			if _, err := NewCorpus(Source{Name: "s", Rules: []Rule{r}}); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestNewCorpusAcceptsWildcardPatterns(t *testing.T) {
	for _, pattern := range []string{"*", "microsoft.sql/*", "microsoft.sql/servers/*"} {
		r := validTestRule("wild")
		r.ResourceTypePattern = pattern
		if _, err := NewCorpus(Source{Name: "s", Rules: []Rule{r}}); err != nil {
			t.Errorf("pattern %q rejected: %v", pattern, err)
		}
	}
}

func TestNewCorpusRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCorpus(
		Source{Name: "one", Rules: []Rule{validTestRule("dup")}},
		Source{Name: "two", Rules: []Rule{validTestRule("dup")}},
	)
	if err == nil {
		t.Error("expected duplicate ID error")
	}
}

func TestCorpusResolve(t *testing.T) {
	corpus, err := NewCorpus(Source{Name: "s", Rules: []Rule{validTestRule("a"), validTestRule("b")}})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}

	all, err := corpus.Resolve("")
	if err != nil || len(all) != 2 {
		t.Errorf("Resolve(\"\") = %d rules, err %v; want 2, nil", len(all), err)
	}

	one, err := corpus.Resolve(" b ")
	if err != nil || len(one) != 1 || one[0].ID != "b" {
		t.Errorf("Resolve(\"b\") = %v, err %v", one, err)
	}

	if _, err := corpus.Resolve("missing"); err == nil {
		t.Error("expected error for unknown rule ID")
	}
}

func TestCorpusSelect(t *testing.T) {
	corpus, err := NewCorpus(
		Source{Name: "one", Rules: []Rule{validTestRule("a"), validTestRule("b")}},
		Source{Name: "two", Rules: []Rule{validTestRule("c")}},
	)
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}

	if sub, err := corpus.Select(""); err != nil || sub != corpus {
		t.Errorf("Select(\"\") = %p, err %v; want the receiver", sub, err)
	}

	sub, err := corpus.Select("c, a")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sub.Len() != 2 {
		t.Fatalf("Select(\"c, a\") kept %d rules, want 2", sub.Len())
	}
	if got := sub.Rules()[0].ID; got != "c" {
		t.Errorf("selector order not kept: first rule %q, want \"c\"", got)
	}
	if src := sub.SourceOf("c"); src != "two" {
		t.Errorf("SourceOf(\"c\") = %q, want \"two\"", src)
	}
	if _, ok := sub.ByID("b"); ok {
		t.Error("unselected rule \"b\" still present")
	}

	if _, err := corpus.Select("a,missing"); err == nil {
		t.Error("expected error for unknown rule ID")
	}
}
