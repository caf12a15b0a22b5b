// Package reify implements the Placement Reifier: converting a solved
// character grid back into concrete (tile-id, row, col) assignments.
package reify

import (
	"fmt"

	"qless/internal/domain"
)

// Reify scans grid in row-major order and, for each filled cell, assigns
// the next unused tile bearing that character. Two tiles with the same
// character are interchangeable; the choice is arbitrary but deterministic
// given the scan order and the order of tiles.
//
// wantCount is the number of filled cells the caller expects (12 in phase
// 1, 11 in phase 2). A mismatch between the grid's letter inventory and the
// supplied tiles means the search produced a grid the multiset could never
// have produced, a bug in the search engine rather than a normal failure
// mode, so Reify panics rather than returning a partial result.
func Reify(grid domain.Grid, tiles []domain.Tile, wantCount int) []domain.TilePlacement {
	used := make([]bool, len(tiles))
	var out []domain.TilePlacement

	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			letter := grid[r][c]
			if letter == 0 {
				continue
			}
			idx := findUnusedTile(tiles, used, letter)
			if idx == -1 {
				panic(fmt.Sprintf("reify: no unused tile for letter %q at (%d,%d); grid inconsistent with tile set", letter, r, c))
			}
			used[idx] = true
			out = append(out, domain.TilePlacement{TileID: tiles[idx].ID, Row: r, Col: c})
		}
	}

	if len(out) != wantCount {
		panic(fmt.Sprintf("reify: produced %d placements, want exactly %d", len(out), wantCount))
	}
	return out
}

func findUnusedTile(tiles []domain.Tile, used []bool, letter byte) int {
	for i, tile := range tiles {
		if !used[i] && tile.Char == letter {
			return i
		}
	}
	return -1
}
