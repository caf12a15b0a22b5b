// Package search implements the backtracking Search Engine: the depth-first
// driver that alternately picks a candidate word and a placement for it,
// guided by rarity and progress heuristics, within a wall-clock deadline.
package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/exp/slices"

	"qless/internal/dictionary"
	"qless/internal/domain"
	"qless/internal/placement"
)

// Config collects every tuning knob the engine uses, so none of them hide
// as package-level constants.
type Config struct {
	Rarity [26]int

	// Branching caps: at depth 0, try at most W0 candidate words and P0
	// placements per word; at any deeper depth, Wd and Pd.
	W0, P0, Wd, Pd int

	// PhaseAFraction is the share of the total deadline given to the
	// 12-letter attempt before Phase B (dropped-letter attempts) begins.
	PhaseAFraction float64
}

// DefaultConfig returns the knob values the spec's test scenarios were
// tuned against.
func DefaultConfig() Config {
	var rarity [26]int
	set := func(weight int, letters string) {
		for i := 0; i < len(letters); i++ {
			rarity[letters[i]-'a'] = weight
		}
	}
	set(10, "qz")
	set(9, "x")
	set(8, "j")
	set(7, "k")
	set(6, "v")
	set(5, "wy")
	set(4, "fbhmp")
	set(3, "gcdu")
	set(2, "lnrtso")
	set(1, "iae")

	return Config{
		Rarity:         rarity,
		W0:             60,
		P0:             8,
		Wd:             30,
		Pd:             4,
		PhaseAFraction: 0.7,
	}
}

// Result is one engine attempt's outcome, the Search Engine's half of
// domain.SolveResult (the reifier supplies the other half).
type Result struct {
	Grid          domain.Grid
	Success       bool
	RemovedLetter *byte
	Phase         int
	Attempts      int
	CombosChecked int
	DeadlineHit   bool
}

// Engine runs the backtracking search against a fixed dictionary.
type Engine struct {
	Dict *dictionary.Dictionary
	Cfg  Config
}

// New builds an Engine.
func New(dict *dictionary.Dictionary, cfg Config) *Engine {
	return &Engine{Dict: dict, Cfg: cfg}
}

// Solve runs the two-phase driver: a full-multiset attempt within
// PhaseAFraction of the deadline, then, if that fails, one dropped-letter
// attempt per distinct letter (rarest first) sharing the remaining budget.
func (e *Engine) Solve(ctx context.Context, full domain.Multiset, deadline time.Duration, seed int64) Result {
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()
	overallDeadline := start.Add(deadline)

	phaseADeadline := start.Add(time.Duration(float64(deadline) * e.Cfg.PhaseAFraction))
	if phaseADeadline.After(overallDeadline) {
		phaseADeadline = overallDeadline
	}

	acc := &attemptStats{}
	grid, ok := e.attempt(ctx, full, phaseADeadline, rng, acc)
	if ok {
		return Result{
			Grid:          grid,
			Success:       true,
			Phase:         1,
			Attempts:      acc.attempts,
			CombosChecked: acc.combosChecked,
			DeadlineHit:   acc.deadlineHit,
		}
	}
	if time.Now().After(overallDeadline) {
		return Result{Phase: 1, Attempts: acc.attempts, CombosChecked: acc.combosChecked, DeadlineHit: true}
	}

	distinct := full.DistinctLetters()
	slices.SortFunc(distinct, func(a, b byte) int {
		return e.Cfg.Rarity[b-'a'] - e.Cfg.Rarity[a-'a']
	})

	if len(distinct) == 0 {
		return Result{Phase: 1, Attempts: acc.attempts, CombosChecked: acc.combosChecked}
	}
	perAttempt := time.Until(overallDeadline) / time.Duration(len(distinct))

	for _, letter := range distinct {
		if time.Now().After(overallDeadline) {
			acc.deadlineHit = true
			break
		}
		dropped := full.Without(letter)
		attemptDeadline := time.Now().Add(perAttempt)
		if attemptDeadline.After(overallDeadline) {
			attemptDeadline = overallDeadline
		}

		grid, ok := e.attempt(ctx, dropped, attemptDeadline, rng, acc)
		if ok {
			removed := letter
			return Result{
				Grid:          grid,
				Success:       true,
				RemovedLetter: &removed,
				Phase:         2,
				Attempts:      acc.attempts,
				CombosChecked: acc.combosChecked,
				DeadlineHit:   acc.deadlineHit,
			}
		}
	}

	return Result{
		Phase:         2,
		Attempts:      acc.attempts,
		CombosChecked: acc.combosChecked,
		DeadlineHit:   acc.deadlineHit,
	}
}

type attemptStats struct {
	attempts      int
	combosChecked int
	deadlineHit   bool
}

// attempt runs one full backtracking descent against one multiset.
func (e *Engine) attempt(ctx context.Context, multiset domain.Multiset, deadline time.Time, rng *rand.Rand, acc *attemptStats) (domain.Grid, bool) {
	acc.attempts++
	shared := e.Dict.WordsFormableFrom(multiset)
	var grid domain.Grid
	return e.descend(ctx, grid, multiset, 0, shared, deadline, rng, acc)
}

type candidate struct {
	word  string
	score int
}

type placementChoice struct {
	option domain.Placement
	grid   domain.Grid
}

func (e *Engine) descend(ctx context.Context, grid domain.Grid, remaining domain.Multiset, depth int, shared []string, deadline time.Time, rng *rand.Rand, acc *attemptStats) (domain.Grid, bool) {
	select {
	case <-ctx.Done():
		acc.deadlineHit = true
		return grid, false
	default:
	}
	if time.Now().After(deadline) {
		acc.deadlineHit = true
		return grid, false
	}

	if remaining.Total() == 0 {
		return grid, true
	}

	if remaining.Total() >= 3 && !anyWordFormable(shared, remaining) {
		return grid, false
	}

	candidates := e.buildCandidates(shared, remaining, depth == 0)
	e.orderCandidates(candidates, remaining, rng)

	width, perWord := e.Cfg.Wd, e.Cfg.Pd
	if depth == 0 {
		width, perWord = e.Cfg.W0, e.Cfg.P0
	}
	if width < len(candidates) {
		candidates = candidates[:width]
	}

	for _, cand := range candidates {
		if time.Now().After(deadline) {
			acc.deadlineHit = true
			return grid, false
		}

		choices := e.enumeratePlacements(grid, cand.word, remaining, depth == 0)
		e.orderPlacements(choices, remaining, rng)
		if perWord < len(choices) {
			choices = choices[:perWord]
		}

		for _, ch := range choices {
			acc.combosChecked++
			nextRemaining := remaining
			for _, c := range ch.option.NewLetters {
				nextRemaining = nextRemaining.Without(c)
			}
			if result, ok := e.descend(ctx, ch.grid, nextRemaining, depth+1, shared, deadline, rng, acc); ok {
				return result, true
			}
		}
	}

	return grid, false
}

func anyWordFormable(words []string, remaining domain.Multiset) bool {
	for _, w := range words {
		if remaining.Dominates(domain.NewMultiset([]byte(w))) {
			return true
		}
	}
	return false
}

// buildCandidates filters the shared candidate list down to words usable at
// this frame: fully formable from remaining for the seed word, or drawing
// at least one letter from remaining (the rest coming from a single grid
// intersection) for later words.
func (e *Engine) buildCandidates(shared []string, remaining domain.Multiset, isSeed bool) []candidate {
	var out []candidate
	for _, w := range shared {
		need := domain.NewMultiset([]byte(w))
		if remaining.Dominates(need) {
			out = append(out, candidate{word: w})
			continue
		}
		if isSeed {
			continue
		}
		if usableViaOneIntersection(need, remaining) {
			out = append(out, candidate{word: w})
		}
	}
	return out
}

func usableViaOneIntersection(need domain.Multiset, remaining domain.Multiset) bool {
	for _, c := range need.DistinctLetters() {
		reduced := need.Without(c)
		if remaining.Dominates(reduced) {
			return true
		}
	}
	return false
}

func (e *Engine) rarityOf(word string, remaining domain.Multiset) int {
	score := 0
	var used domain.Multiset
	for i := 0; i < len(word); i++ {
		c := word[i]
		if used.Count(c) < remaining.Count(c) {
			score += e.Cfg.Rarity[c-'a']
			used[c-'a']++
		}
	}
	return score
}

func (e *Engine) orderCandidates(candidates []candidate, remaining domain.Multiset, rng *rand.Rand) {
	for i := range candidates {
		candidates[i].score = e.rarityOf(candidates[i].word, remaining)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return len(b.word) - len(a.word)
	})
}

func (e *Engine) orderPlacements(choices []placementChoice, remaining domain.Multiset, rng *rand.Rand) {
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	slices.SortStableFunc(choices, func(x, y placementChoice) int {
		a, b := x.option, y.option
		ra, rb := e.placementRarity(a, remaining), e.placementRarity(b, remaining)
		if ra != rb {
			return rb - ra
		}
		if len(a.NewLetters) != len(b.NewLetters) {
			return len(b.NewLetters) - len(a.NewLetters)
		}
		return b.IntersectionCount - a.IntersectionCount
	})
}

func (e *Engine) placementRarity(p domain.Placement, remaining domain.Multiset) int {
	score := 0
	for _, c := range p.NewLetters {
		score += e.Cfg.Rarity[c-'a']
	}
	return score
}

// enumeratePlacements finds every distinct (direction, start) pair at which
// word could possibly be placed, per the spec's crossing-cell scan: for
// every filled cell whose letter matches some letter of word, try both
// directions through that intersection. On an empty grid there is nothing
// to scan, so the canonical seed position is the sole candidate.
func (e *Engine) enumeratePlacements(grid domain.Grid, word string, remaining domain.Multiset, isSeed bool) []placementChoice {
	seen := make(map[string]bool)
	var out []placementChoice

	tryAt := func(start domain.Cell, dir domain.Direction) {
		key := string(dir) + ":" + itoa(start.Row) + "," + itoa(start.Col)
		if seen[key] {
			return
		}
		seen[key] = true
		opt, next, ok := placement.Try(grid, word, start, dir, remaining, e.Dict)
		if !ok {
			return
		}
		out = append(out, placementChoice{option: opt, grid: next})
	}

	if isSeed {
		start, dir := placement.SeedStart(len(word))
		tryAt(start, dir)
		return out
	}

	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			letter := grid[r][c]
			if letter == 0 {
				continue
			}
			for i := 0; i < len(word); i++ {
				if word[i] != letter {
					continue
				}
				tryAt(domain.Cell{Row: r, Col: c - i}, domain.Horizontal)
				tryAt(domain.Cell{Row: r - i, Col: c}, domain.Vertical)
			}
		}
	}
	return out
}

func itoa(n int) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n < 10 {
		return string([]byte{byte('0' + n)})
	}
	return itoa(n/10) + itoa(n%10)
}
