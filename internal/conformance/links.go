package conformance

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"azmig/internal/logging"

	"golang.org/x/sync/errgroup"
)

// linkTarget is one distinct URL with every rule that cites it.
type linkTarget struct {
	url     string
	ruleIDs []string // "source/ruleID"
}

// checkLinks verifies every distinct reference link in the corpus. Checks run
// concurrently within fixed-size chunks and sequentially across chunks, so at
// most ChunkSize outbound connections are in flight. Each URL gets one HEAD
// request with a single GET fallback; there are no further retries and no
// overall deadline.
func (h *Harness) checkLinks(ctx context.Context) LinkSummary {
	targets := h.collectLinks()
	summary := LinkSummary{Checked: len(targets)}

	var mu sync.Mutex
	for start := 0; start < len(targets); start += h.opts.ChunkSize {
		end := min(start+h.opts.ChunkSize, len(targets))

		g, gctx := errgroup.WithContext(ctx)
		for _, target := range targets[start:end] {
			g.Go(func() error {
				if detail, ok := h.checkOne(gctx, target.url); !ok {
					mu.Lock()
					summary.Findings = append(summary.Findings, BrokenLink{
						URL:     target.url,
						RuleIDs: target.ruleIDs,
						Detail:  detail,
					})
					mu.Unlock()
				}
				return nil
			})
		}
		// Workers never return errors; broken links are findings, not failures.
		_ = g.Wait()
	}

	sort.Slice(summary.Findings, func(i, j int) bool {
		return summary.Findings[i].URL < summary.Findings[j].URL
	})
	summary.Broken = len(summary.Findings)
	return summary
}

func (h *Harness) collectLinks() []linkTarget {
	byURL := make(map[string][]string)
	var order []string
	for _, r := range h.corpus.Rules() {
		if r.ReferenceLink == "" {
			continue
		}
		if _, seen := byURL[r.ReferenceLink]; !seen {
			order = append(order, r.ReferenceLink)
		}
		byURL[r.ReferenceLink] = append(byURL[r.ReferenceLink], h.corpus.SourceOf(r.ID)+"/"+r.ID)
	}
	targets := make([]linkTarget, 0, len(order))
	for _, url := range order {
		targets = append(targets, linkTarget{url: url, ruleIDs: byURL[url]})
	}
	return targets
}

// checkOne probes a URL with HEAD, falling back to GET since some servers
// reject HEAD. Returns ok=false with a human-readable detail on failure.
func (h *Harness) checkOne(ctx context.Context, url string) (detail string, ok bool) {
	if detail, ok = h.request(ctx, http.MethodHead, url); ok {
		return "", true
	}
	logging.Logger.Debug().Str("url", url).Str("detail", detail).Msg("HEAD failed, retrying with GET")
	if detail, ok = h.request(ctx, http.MethodGet, url); ok {
		return "", true
	}
	return detail, false
}

func (h *Harness) request(ctx context.Context, method, url string) (detail string, ok bool) {
	reqCtx, cancel := context.WithTimeout(ctx, h.opts.LinkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, url, nil)
	if err != nil {
		return fmt.Sprintf("build request: %v", err), false
	}
	resp, err := h.opts.Client.Do(req)
	if err != nil {
		return fmt.Sprintf("%s: %v", method, err), false
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Sprintf("%s: status %d", method, resp.StatusCode), false
	}
	return "", true
}
