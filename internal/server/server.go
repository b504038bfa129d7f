// Package server exposes the assembly pipeline over HTTP.
//
// The API is a thin wrapper around assemble.Runner: one POST endpoint that
// takes reads and parameters and returns contigs with statistics. Multiple
// instances can share a Redis-backed result cache.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwarzecha/weft/pkg/assemble"
	"github.com/mwarzecha/weft/pkg/dbg"
)

// maxRequestBytes bounds request bodies (reads are inlined in the JSON).
const maxRequestBytes = 256 << 20

// Server handles assembly requests.
type Server struct {
	runner *assemble.Runner
	logger *log.Logger
}

// New creates a server around the given runner.
func New(runner *assemble.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Post("/assemble", s.handleAssemble)

	return r
}

// assembleRequest is the POST /assemble request body.
type assembleRequest struct {
	Sequences  []string `json:"sequences"`
	K          int      `json:"k,omitempty"`
	MaxContigs int      `json:"max_contigs,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	var req assembleRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Sequences) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sequences is required"})
		return
	}

	opts := assemble.Options{
		K:          req.K,
		MaxContigs: req.MaxContigs,
		Refresh:    req.Refresh,
		Logger:     s.logger,
	}
	result, err := s.runner.Assemble(r.Context(), req.Sequences, opts)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusFor maps engine errors to HTTP statuses. Bad input (alphabet, k,
// cyclic graph) is the client's problem; everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dbg.ErrInvalidBase),
		errors.Is(err, dbg.ErrInvalidK),
		errors.Is(err, dbg.ErrCycle):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
