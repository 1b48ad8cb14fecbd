package conformance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"azmig/internal/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkRule(id, link string) rules.Rule {
	return rules.Rule{
		ID:                  id,
		ResourceTypePattern: "microsoft.test/widgets",
		Scenario:            rules.ScenarioSubscription,
		Severity:            rules.SeverityWarning,
		Message:             "m",
		ReferenceLink:       link,
	}
}

func TestCheckLinks(t *testing.T) {
	var headOnlyGets atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/no-head":
			// Rejects HEAD; the GET fallback must succeed.
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			headOnlyGets.Add(1)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	corpus, err := rules.NewCorpus(rules.Source{Name: "links", Rules: []rules.Rule{
		linkRule("rule-ok", srv.URL+"/ok"),
		linkRule("rule-ok-dup", srv.URL+"/ok"), // same URL checked once
		linkRule("rule-no-head", srv.URL+"/no-head"),
		linkRule("rule-gone", srv.URL+"/gone"),
		linkRule("rule-no-link", ""),
	}})
	require.NoError(t, err)

	harness := NewHarness(corpus, Options{
		MatrixPath: "testdata/does-not-exist.csv",
		ChunkSize:  2,
	})

	summary := harness.checkLinks(context.Background())

	assert.Equal(t, 3, summary.Checked, "distinct non-empty links")
	assert.Equal(t, 1, summary.Broken)
	assert.EqualValues(t, 1, headOnlyGets.Load(), "HEAD rejection must fall back to exactly one GET")

	require.Len(t, summary.Findings, 1)
	finding := summary.Findings[0]
	assert.Equal(t, srv.URL+"/gone", finding.URL)
	assert.Equal(t, []string{"links/rule-gone"}, finding.RuleIDs)
	assert.Contains(t, finding.Detail, "404")
}

func TestCheckLinksGroupsCitingRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	corpus, err := rules.NewCorpus(
		rules.Source{Name: "one", Rules: []rules.Rule{linkRule("a", srv.URL)}},
		rules.Source{Name: "two", Rules: []rules.Rule{linkRule("b", srv.URL)}},
	)
	require.NoError(t, err)

	harness := NewHarness(corpus, Options{MatrixPath: "testdata/does-not-exist.csv"})
	summary := harness.checkLinks(context.Background())

	require.Len(t, summary.Findings, 1)
	assert.Equal(t, []string{"one/a", "two/b"}, summary.Findings[0].RuleIDs)
}
