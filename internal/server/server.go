// Package server exposes the analyzer and the conformance harness over HTTP
// for the surrounding dashboard. The API is read-only: callers post resource
// records and receive verdicts; nothing is persisted.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"azmig/internal/conformance"
	"azmig/internal/engine"
	"azmig/internal/logging"
	"azmig/internal/resource"
	"azmig/internal/rules"
)

type Server struct {
	corpus   *rules.Corpus
	analyzer *engine.Analyzer
	harness  *conformance.Harness
	addr     string
}

func New(corpus *rules.Corpus, addr string, harnessOpts conformance.Options) *Server {
	return &Server{
		corpus:   corpus,
		analyzer: engine.NewAnalyzer(corpus),
		harness:  conformance.NewHarness(corpus, harnessOpts),
		addr:     addr,
	}
}

// Handler builds the route table. Split out from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("POST /api/assess", s.handleAssess)
	mux.HandleFunc("POST /api/diagnostics", s.handleDiagnostics)
	return mux
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info().Str("addr", s.addr).Msg("diagnostics server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type assessRequest struct {
	Scenario  string              `json:"scenario"`
	Resources []resource.Resource `json:"resources"`
}

type assessResponse struct {
	Scenario rules.Scenario           `json:"scenario"`
	Results  []rules.AnalyzedResource `json:"results"`
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	scenario, err := rules.ParseScenario(req.Scenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := assessResponse{
		Scenario: scenario,
		Results:  make([]rules.AnalyzedResource, 0, len(req.Resources)),
	}
	for _, res := range req.Resources {
		resp.Results = append(resp.Results, s.analyzer.Analyze(res, scenario))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	report := s.harness.Run(r.Context())
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
