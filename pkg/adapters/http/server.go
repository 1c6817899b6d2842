// Package http serves automata over HTTP: machine inspection, run execution
// and Prometheus metrics.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fsmlab/automata"
	"github.com/fsmlab/automata/internal/logging"
	"github.com/fsmlab/automata/internal/presentation/graph"
	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
	"github.com/fsmlab/automata/pkg/observability"
	"github.com/fsmlab/automata/pkg/ports"
	"github.com/fsmlab/automata/pkg/runner"
)

// Server exposes the automaton catalogue and run execution. Automata are
// constructed per request: the engine is synchronous and instances are
// independent, so there is no shared mutable state between handlers.
type Server struct {
	store   ports.RunStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStore configures run persistence. Nil keeps runs ephemeral.
func WithStore(store ports.RunStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics configures the Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewHandler creates the HTTP handler for the automata service.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics(prometheus.NewRegistry())
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/machines", s.ListMachines)
	r.Get("/machines/{kind}", s.GetMachine)
	r.Get("/machines/{kind}/graph", s.GetGraph)
	r.Post("/machines/{kind}/run", s.RunMachine)
	r.Get("/runs", s.ListRuns)
	r.Get("/runs/{id}", s.GetRun)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MachineInfo is the catalogue entry for one definition kind.
type MachineInfo struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// MachineDetail is the full description of one definition.
type MachineDetail struct {
	Kind        string              `json:"kind"`
	Name        string              `json:"name"`
	Grammar     string              `json:"grammar"`
	States      []domain.State      `json:"states"`
	Transitions []domain.Transition `json:"transitions"`
}

// RunRequest is the body of POST /machines/{kind}/run.
type RunRequest struct {
	Input string `json:"input"`
	// Save persists the run when a store is configured.
	Save bool `json:"save,omitempty"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "automata-http",
		"version": automata.Version,
	})
}

// ListMachines handles GET /machines.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	out := make([]MachineInfo, 0)
	for _, kind := range definitions.Kinds() {
		def, err := definitions.ForKind(kind)
		if err != nil {
			continue
		}
		out = append(out, MachineInfo{Kind: def.Kind, Name: def.Name})
	}
	s.writeJSON(w, out)
}

// GetMachine handles GET /machines/{kind}.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	def, ok := s.lookupDefinition(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, MachineDetail{
		Kind:        def.Kind,
		Name:        def.Name,
		Grammar:     def.Grammar,
		States:      def.States,
		Transitions: def.Transitions,
	})
}

// GetGraph handles GET /machines/{kind}/graph, returning Mermaid text.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	def, ok := s.lookupDefinition(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(def.States, def.Transitions, nil))
}

// RunMachine handles POST /machines/{kind}/run.
func (s *Server) RunMachine(w http.ResponseWriter, r *http.Request) {
	def, ok := s.lookupDefinition(w, r)
	if !ok {
		return
	}

	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("run: invalid request body", "error", err)
		return
	}

	machine, err := automata.New(def, automata.WithHooks(s.metrics.Hooks(def.Kind)))
	if err != nil {
		http.Error(w, fmt.Sprintf("Construction error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run: construction failed", "kind", def.Kind, "error", err)
		return
	}

	drv := runner.NewRunner(runner.WithLogger(s.logger))
	if body.Save && s.store != nil {
		drv.Store = s.store
	}

	started := time.Now()
	record, err := drv.Run(r.Context(), machine, body.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusBadRequest)
		s.logger.Warn("run failed", "kind", def.Kind, "error", err)
		return
	}
	s.metrics.ObserveRun(def.Kind, record.Outcome, time.Since(started))
	s.writeJSON(w, record)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Run persistence is not configured", http.StatusNotFound)
		return
	}
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("list runs failed", "error", err)
		return
	}
	s.writeJSON(w, ids)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Run persistence is not configured", http.StatusNotFound)
		return
	}
	id := chi.URLParam(r, "id")
	record, err := s.store.Load(r.Context(), id)
	if err != nil {
		if err == domain.ErrRunNotFound {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("get run failed", "id", id, "error", err)
		return
	}
	s.writeJSON(w, record)
}

func (s *Server) lookupDefinition(w http.ResponseWriter, r *http.Request) (*definitions.Definition, bool) {
	kind := chi.URLParam(r, "kind")
	def, err := definitions.ForKind(kind)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown machine kind %q", kind), http.StatusNotFound)
		return nil, false
	}
	return def, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
