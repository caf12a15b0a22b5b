// Package api exposes the solver as an HTTP service: submit a tile string,
// get back a placement, and look up past runs.
package api

import (
	"log/slog"
	"net/http"

	"qless/internal/history"
	"qless/internal/qless"
)

// Config holds the dependencies NewRouter wires into the handlers.
type Config struct {
	Solver  *qless.Solver
	History history.Repository
	Logger  *slog.Logger
}

// NewRouter builds the full HTTP handler, with the middleware stack applied.
func NewRouter(cfg Config) http.Handler {
	handler := NewHandler(cfg.Solver, cfg.History)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.HandleFunc("POST /v1/solve", handler.Solve)
	mux.HandleFunc("GET /v1/solves/{id}", handler.GetSolve)
	mux.HandleFunc("GET /v1/solves", handler.ListSolves)

	var h http.Handler = mux
	h = CORS(h)
	h = Gzip(h)
	h = Logger(cfg.Logger)(h)
	h = Recover(cfg.Logger)(h)
	return h
}
