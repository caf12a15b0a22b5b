package placement

import (
	"testing"

	"qless/internal/dictionary"
	"qless/internal/domain"
)

func testDict() *dictionary.Dictionary {
	d := dictionary.New()
	for _, w := range []string{"cat", "car", "art", "tar", "cot"} {
		d.Add(w)
	}
	return d
}

func TestTrySeedPlacementOnEmptyGrid(t *testing.T) {
	var grid domain.Grid
	remaining := domain.NewMultiset([]byte("cat"))
	start, dir := SeedStart(3)

	p, next, ok := Try(grid, "cat", start, dir, remaining, testDict())
	if !ok {
		t.Fatal("expected the seed placement to succeed on an empty grid")
	}
	if p.IntersectionCount != 0 {
		t.Errorf("seed placement should have zero intersections, got %d", p.IntersectionCount)
	}
	if len(p.NewLetters) != 3 {
		t.Errorf("expected 3 new letters, got %d", len(p.NewLetters))
	}
	if next[start.Row][start.Col] != 'c' {
		t.Error("expected the tentative grid to contain the placed word")
	}
}

func TestTryAcceptsInBoundsSeedAwayFromCanonicalStart(t *testing.T) {
	// On an empty grid there is nothing to intersect, so any in-bounds seed
	// position passes, not just the one SeedStart picks.
	var grid domain.Grid
	remaining := domain.NewMultiset([]byte("cat"))
	_, _, ok := Try(grid, "cat", domain.Cell{Row: 0, Col: 0}, domain.Horizontal, remaining, testDict())
	if !ok {
		t.Fatal("a bounds-valid seed placement should succeed")
	}
}

func TestTryRequiresCrossingOnNonEmptyGrid(t *testing.T) {
	var grid domain.Grid
	grid[3][3] = 'z' // an isolated letter unrelated to the candidate word
	remaining := domain.NewMultiset([]byte("cat"))

	_, _, ok := Try(grid, "cat", domain.Cell{Row: 0, Col: 0}, domain.Horizontal, remaining, testDict())
	if ok {
		t.Error("a placement that does not touch any existing letter must be rejected")
	}
}

func TestTryOutOfBoundsRejected(t *testing.T) {
	var grid domain.Grid
	remaining := domain.NewMultiset([]byte("cat"))
	_, _, ok := Try(grid, "cat", domain.Cell{Row: 0, Col: 6}, domain.Horizontal, remaining, testDict())
	if ok {
		t.Error("a word that runs off the right edge must be rejected")
	}
}

func TestTryNoExtensionOfExistingRun(t *testing.T) {
	var grid domain.Grid
	grid[0][0] = 'c'
	grid[0][1] = 'a'
	grid[0][2] = 'r'
	remaining := domain.NewMultiset([]byte("t"))

	// Extending "car" into "cart" by writing 't' right after it must fail:
	// the cell before the new word's start already holds a letter.
	_, _, ok := Try(grid, "t", domain.Cell{Row: 0, Col: 3}, domain.Horizontal, remaining, testDict())
	if ok {
		t.Error("placing directly after an existing run must be rejected as an extension")
	}
}

func TestTryLetterBudgetExhausted(t *testing.T) {
	var grid domain.Grid
	remaining := domain.NewMultiset([]byte("ca")) // missing the 't'
	start, dir := SeedStart(3)
	_, _, ok := Try(grid, "cat", start, dir, remaining, testDict())
	if ok {
		t.Error("placement must fail when the remaining multiset lacks a needed letter")
	}
}

func TestTryCellCompatibilityConflict(t *testing.T) {
	var grid domain.Grid
	grid[3][2] = 'x'
	remaining := domain.NewMultiset([]byte("cat"))
	_, _, ok := Try(grid, "cat", domain.Cell{Row: 3, Col: 2}, domain.Horizontal, remaining, testDict())
	if ok {
		t.Error("a conflicting existing letter must reject the placement")
	}
}

func TestTryGlobalLegalityRejectsTwoLetterCross(t *testing.T) {
	var grid domain.Grid
	// Seed "cat" horizontally at row 3.
	grid[3][2], grid[3][3], grid[3][4] = 'c', 'a', 't'
	remaining := domain.NewMultiset([]byte("o"))

	// Crossing down from the 'c' with a two-letter word must be rejected by
	// global legality even though bounds/compatibility/budget all pass.
	_, _, ok := Try(grid, "co", domain.Cell{Row: 3, Col: 2}, domain.Vertical, remaining, testDict())
	if ok {
		t.Error("a two-letter crossing run must always be rejected")
	}
}

func TestTryDoesNotMutateCallerGrid(t *testing.T) {
	var grid domain.Grid
	remaining := domain.NewMultiset([]byte("cat"))
	start, dir := SeedStart(3)

	before := grid
	_, _, ok := Try(grid, "cat", start, dir, remaining, testDict())
	if !ok {
		t.Fatal("expected placement to succeed")
	}
	if grid != before {
		t.Error("Try must not mutate the caller's grid")
	}
}
