// Package placement implements the Placement Kernel: deciding whether one
// word can be written into one grid location, without mutating anything.
package placement

import (
	"qless/internal/dictionary"
	"qless/internal/domain"
	"qless/internal/gridvalidator"
)

// Try attempts to place word at start in direction dir on grid, drawing
// newly-needed letters from remaining. It mutates none of its arguments; on
// success it returns the placement option and a tentative grid the caller
// may adopt.
func Try(grid domain.Grid, word string, start domain.Cell, dir domain.Direction, remaining domain.Multiset, dict *dictionary.Dictionary) (domain.Placement, domain.Grid, bool) {
	if !fitsBounds(start, dir, len(word)) {
		return domain.Placement{}, grid, false
	}
	if !noExtension(grid, start, dir, len(word)) {
		return domain.Placement{}, grid, false
	}

	working := remaining
	var newLetters []byte
	intersections := 0
	candidate := grid

	cell := start
	for i := 0; i < len(word); i++ {
		c := word[i]
		existing := candidate[cell.Row][cell.Col]

		switch {
		case existing == 0:
			if working.Count(c) == 0 {
				return domain.Placement{}, grid, false
			}
			working = working.Without(c)
			newLetters = append(newLetters, c)
			candidate[cell.Row][cell.Col] = c
		case existing == c:
			intersections++
		default:
			return domain.Placement{}, grid, false
		}

		cell = cell.Step(dir)
	}

	gridHasLetters := !isEmpty(grid)
	if gridHasLetters && intersections == 0 {
		return domain.Placement{}, grid, false
	}
	if !gridHasLetters && intersections != 0 {
		// An "empty grid" can never already contain a matching letter.
		return domain.Placement{}, grid, false
	}

	if !gridvalidator.IsValidGrid(candidate, dict) {
		return domain.Placement{}, grid, false
	}

	p := domain.Placement{
		Word:              word,
		Start:             start,
		Direction:         dir,
		NewLetters:        newLetters,
		IntersectionCount: intersections,
	}
	return p, candidate, true
}

// SeedStart returns the canonical seed position for the first word of a
// given length: a horizontal run centered on row 3.
func SeedStart(wordLen int) (domain.Cell, domain.Direction) {
	col := (domain.GridSize - wordLen) / 2
	if col < 0 {
		col = 0
	}
	return domain.Cell{Row: 3, Col: col}, domain.Horizontal
}

func fitsBounds(start domain.Cell, dir domain.Direction, length int) bool {
	if !start.InBounds() {
		return false
	}
	end := start
	for i := 1; i < length; i++ {
		end = end.Step(dir)
	}
	return end.InBounds()
}

func noExtension(grid domain.Grid, start domain.Cell, dir domain.Direction, length int) bool {
	before := stepBack(start, dir)
	if before.InBounds() && grid[before.Row][before.Col] != 0 {
		return false
	}
	end := start
	for i := 1; i < length; i++ {
		end = end.Step(dir)
	}
	after := end.Step(dir)
	if after.InBounds() && grid[after.Row][after.Col] != 0 {
		return false
	}
	return true
}

func stepBack(c domain.Cell, dir domain.Direction) domain.Cell {
	if dir == domain.Horizontal {
		return domain.Cell{Row: c.Row, Col: c.Col - 1}
	}
	return domain.Cell{Row: c.Row - 1, Col: c.Col}
}

func isEmpty(grid domain.Grid) bool {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if grid[r][c] != 0 {
				return false
			}
		}
	}
	return true
}
