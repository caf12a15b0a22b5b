package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"qless/internal/domain"
	"qless/internal/history"
	"qless/internal/qless"
	"qless/internal/validate"
)

// Handler holds the dependencies every route needs.
type Handler struct {
	solver  *qless.Solver
	history history.Repository
}

// NewHandler builds a Handler.
func NewHandler(solver *qless.Solver, hist history.Repository) *Handler {
	return &Handler{solver: solver, history: hist}
}

type solveRequest struct {
	Tiles      string `json:"tiles"`
	DeadlineMS int64  `json:"deadline_ms"`
	Seed       int64  `json:"seed"`
}

type tilePlacementJSON struct {
	TileID string `json:"tile_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type statsJSON struct {
	Attempts      int   `json:"attempts"`
	Milliseconds  int64 `json:"milliseconds"`
	CombosChecked int   `json:"combos_checked"`
	DeadlineHit   bool  `json:"deadline_hit"`
	Phase         int   `json:"phase"`
}

type solveResponse struct {
	ID            string              `json:"id"`
	Success       bool                `json:"success"`
	RemovedLetter *string             `json:"removed_letter,omitempty"`
	Placements    []tilePlacementJSON `json:"placements"`
	Stats         statsJSON           `json:"stats"`
}

const defaultDeadline = 8 * time.Second

// Solve handles POST /v1/solve: body {tiles, deadline_ms?, seed?}.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if errs := validate.SolveRequestJSON(body); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, APIError{Error: "invalid request", Message: errs.Error()})
		return
	}

	var req solveRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON")
		return
	}

	deadline := defaultDeadline
	if req.DeadlineMS > 0 {
		deadline = time.Duration(req.DeadlineMS) * time.Millisecond
	}

	tiles := make([]domain.Tile, len(req.Tiles))
	for i := 0; i < len(req.Tiles); i++ {
		tiles[i] = domain.Tile{ID: "t" + strconv.Itoa(i), Char: req.Tiles[i]}
	}

	result, err := h.solver.Solve(r.Context(), tiles, deadline, req.Seed)
	if err != nil {
		if errors.Is(err, qless.ErrBadInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "solve failed")
		return
	}

	run := &history.SolveRun{
		Tiles:         req.Tiles,
		DeadlineMS:    int64(deadline / time.Millisecond),
		Seed:          req.Seed,
		Success:       result.Success,
		RemovedLetter: result.RemovedLetter,
		Placements:    result.Placements,
		Stats:         result.Stats,
	}
	if err := h.history.Store(r.Context(), run); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist solve run")
		return
	}

	writeSolveResultJSON(w, toSolveResponse(run))
}

// GetSolve handles GET /v1/solves/{id}.
func (h *Handler) GetSolve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, err := h.history.Get(r.Context(), id)
	if err == history.ErrNotFound {
		writeError(w, http.StatusNotFound, "solve run not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch solve run")
		return
	}
	writeSolveResultJSON(w, toSolveResponse(run))
}

// ListSolves handles GET /v1/solves?success=true&limit=50.
func (h *Handler) ListSolves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := history.Filter{Limit: 50}
	if s := q.Get("success"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			filter.Success = &b
		}
	}
	if l := q.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			filter.Limit = n
		}
	}

	runs, err := h.history.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list solve runs")
		return
	}

	responses := make([]solveResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toSolveResponse(run))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"solves": responses,
		"count":  len(responses),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func toSolveResponse(run *history.SolveRun) solveResponse {
	placements := make([]tilePlacementJSON, len(run.Placements))
	for i, p := range run.Placements {
		placements[i] = tilePlacementJSON{TileID: p.TileID, Row: p.Row, Col: p.Col}
	}
	var removed *string
	if run.RemovedLetter != nil {
		v := string(*run.RemovedLetter)
		removed = &v
	}
	return solveResponse{
		ID:            run.ID,
		Success:       run.Success,
		RemovedLetter: removed,
		Placements:    placements,
		Stats: statsJSON{
			Attempts:      run.Stats.Attempts,
			Milliseconds:  run.Stats.Milliseconds,
			CombosChecked: run.Stats.CombosChecked,
			DeadlineHit:   run.Stats.DeadlineHit,
			Phase:         run.Stats.Phase,
		},
	}
}

// APIError is a structured error body.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIError{Error: http.StatusText(status), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSolveResultJSON marshals a solveResponse, validates it against the
// same solve_result.schema.json a client would check it with, and only then
// writes it — so a response that fails its own schema never leaves the
// service as a 200.
func writeSolveResultJSON(w http.ResponseWriter, resp solveResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	if errs := validate.SolveResultJSON(body); len(errs) > 0 {
		writeError(w, http.StatusInternalServerError, "response failed schema validation: "+errs.Error())
		return
	}

	hash := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(hash[:8]) + `"`

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
