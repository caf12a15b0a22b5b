// Package qless wires the Dictionary, Search Engine, Placement Kernel, Grid
// Validator, and Placement Reifier together behind the single public Solve
// entry point.
package qless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"qless/internal/dictionary"
	"qless/internal/domain"
	"qless/internal/reify"
	"qless/internal/search"
)

// ErrBadInput is wrapped with a specific reason and returned when tiles
// fail the input-shape checks before search begins.
var ErrBadInput = errors.New("qless: invalid input")

// Solver owns a loaded dictionary and a search configuration, and exposes
// the sole public entry point, Solve.
type Solver struct {
	dict *dictionary.Dictionary
	cfg  search.Config
}

// NewSolver builds a Solver around an already-loaded dictionary.
func NewSolver(dict *dictionary.Dictionary, cfg search.Config) *Solver {
	return &Solver{dict: dict, cfg: cfg}
}

// LoadDictionary reads a line-delimited word list into a Dictionary.
func LoadDictionary(r io.Reader) (*dictionary.Dictionary, error) {
	return dictionary.Load(r)
}

// Solve is the sole public surface of the core: given between 11 and 12
// tiles, a wall-clock deadline, and an optional tie-breaking seed, it
// attempts a 12-letter placement, falling back to 11-letter attempts with
// one tile dropped.
func (s *Solver) Solve(ctx context.Context, tiles []domain.Tile, deadline time.Duration, seed int64) (domain.SolveResult, error) {
	if err := validateTiles(tiles); err != nil {
		return domain.SolveResult{}, fmt.Errorf("%w: %s", ErrBadInput, err)
	}
	if deadline < 0 {
		return domain.SolveResult{}, fmt.Errorf("%w: deadline must be >= 0", ErrBadInput)
	}

	start := time.Now()
	multiset := tilesToMultiset(tiles)
	engine := search.New(s.dict, s.cfg)
	res := engine.Solve(ctx, multiset, deadline, seed)

	stats := domain.Stats{
		Attempts:      res.Attempts,
		Milliseconds:  time.Since(start).Milliseconds(),
		CombosChecked: res.CombosChecked,
		DeadlineHit:   res.DeadlineHit,
		Phase:         res.Phase,
	}

	if !res.Success {
		return domain.SolveResult{Success: false, Stats: stats}, nil
	}

	wantCount := domain.FullTileCount
	usableTiles := tiles
	if res.Phase == 2 {
		wantCount = domain.DroppedTileCount
		usableTiles = tilesWithoutOneOf(tiles, *res.RemovedLetter)
	}

	placements := reify.Reify(res.Grid, usableTiles, wantCount)

	return domain.SolveResult{
		Placements:    placements,
		Success:       true,
		RemovedLetter: res.RemovedLetter,
		Stats:         stats,
	}, nil
}

func validateTiles(tiles []domain.Tile) error {
	if len(tiles) < domain.DroppedTileCount || len(tiles) > domain.FullTileCount {
		return fmt.Errorf("tile count %d outside [%d, %d]", len(tiles), domain.DroppedTileCount, domain.FullTileCount)
	}
	for _, t := range tiles {
		if t.Char < 'a' || t.Char > 'z' {
			return fmt.Errorf("tile %q has non-letter character %q", t.ID, t.Char)
		}
	}
	return nil
}

func tilesToMultiset(tiles []domain.Tile) domain.Multiset {
	letters := make([]byte, len(tiles))
	for i, t := range tiles {
		letters[i] = t.Char
	}
	return domain.NewMultiset(letters)
}

// tilesWithoutOneOf drops exactly one tile bearing letter, used to rebuild
// the phase-2 tile set that the reifier assigns against.
func tilesWithoutOneOf(tiles []domain.Tile, letter byte) []domain.Tile {
	out := make([]domain.Tile, 0, len(tiles)-1)
	dropped := false
	for _, t := range tiles {
		if !dropped && t.Char == letter {
			dropped = true
			continue
		}
		out = append(out, t)
	}
	return out
}
