package gridvalidator

import (
	"testing"

	"qless/internal/dictionary"
	"qless/internal/domain"
)

func testDict() *dictionary.Dictionary {
	d := dictionary.New()
	for _, w := range []string{"cat", "car", "art"} {
		d.Add(w)
	}
	return d
}

func TestIsValidGridEmptyBoard(t *testing.T) {
	var grid domain.Grid
	if !IsValidGrid(grid, testDict()) {
		t.Error("an empty grid has no runs and must be valid")
	}
}

func TestIsValidGridSingleLetterIsFine(t *testing.T) {
	var grid domain.Grid
	grid[0][0] = 'z'
	if !IsValidGrid(grid, testDict()) {
		t.Error("an isolated single letter is always legal")
	}
}

func TestIsValidGridTwoLetterRunIsIllegal(t *testing.T) {
	var grid domain.Grid
	grid[0][0] = 'c'
	grid[0][1] = 'a'
	if IsValidGrid(grid, testDict()) {
		t.Error("a two-letter run must never be legal")
	}
}

func TestIsValidGridThreeLetterRunMustBeAWord(t *testing.T) {
	var grid domain.Grid
	grid[0][0] = 'c'
	grid[0][1] = 'a'
	grid[0][2] = 't'
	if !IsValidGrid(grid, testDict()) {
		t.Error("\"cat\" is in the dictionary and should validate")
	}

	grid[0][2] = 'x' // "cax" is not a word
	if IsValidGrid(grid, testDict()) {
		t.Error("a three-letter run that is not a dictionary word must be illegal")
	}
}

func TestIsValidGridChecksBothAxes(t *testing.T) {
	var grid domain.Grid
	// "car" across row 0, and down column 0 "cat" crossing at 'c'.
	grid[0][0] = 'c'
	grid[0][1] = 'a'
	grid[0][2] = 'r'
	grid[1][0] = 'a'
	grid[2][0] = 't'
	if !IsValidGrid(grid, testDict()) {
		t.Error("expected both \"car\" and \"cat\" to validate")
	}

	grid[2][0] = 'x' // column becomes "cax"
	if IsValidGrid(grid, testDict()) {
		t.Error("an illegal column run must fail validation even if rows are fine")
	}
}

func TestRunsCollectsAllMaximalRuns(t *testing.T) {
	var grid domain.Grid
	grid[0][0] = 'c'
	grid[0][1] = 'a'
	grid[0][2] = 't'
	runs := Runs(grid)
	found := false
	for _, r := range runs {
		if r == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Runs() to include \"cat\", got %v", runs)
	}
}
