// Command qless runs the Q-Less solver against a single tile string and
// reports the outcome, either as a human-readable summary or as a line of
// JSON for scripted use.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"qless/internal/dictionary"
	"qless/internal/domain"
	"qless/internal/history"
	"qless/internal/qless"
	"qless/internal/search"
)

const (
	exitSuccess = 0
	exitNoSolve = 1
	exitBadArgs = 2
)

func main() {
	tiles := flag.String("tiles", "", "11 or 12 letters to solve (case-insensitive), e.g. aeiorstnldmh")
	deadline := flag.Duration("deadline", 8*time.Second, "wall-clock budget for the search")
	seed := flag.Int64("seed", 1, "PRNG seed, for reproducible runs")
	dictPath := flag.String("dict", "", "line-delimited word list (empty uses the built-in sample)")
	dbPath := flag.String("db", "", "optional SQLite path to record this run in the solve-run history")
	jsonOut := flag.Bool("json", !isatty.IsTerminal(os.Stdout.Fd()), "emit one JSON object instead of a human summary")
	flag.Parse()

	if *tiles == "" {
		fmt.Fprintln(os.Stderr, "Error: -tiles is required")
		flag.Usage()
		os.Exit(exitBadArgs)
	}
	*tiles = strings.ToLower(*tiles)

	dict, err := loadDictionary(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load dictionary: %v\n", err)
		os.Exit(exitBadArgs)
	}

	letterTiles := make([]domain.Tile, len(*tiles))
	for i := 0; i < len(*tiles); i++ {
		letterTiles[i] = domain.Tile{ID: "t" + strconv.Itoa(i), Char: (*tiles)[i]}
	}

	solver := qless.NewSolver(dict, search.DefaultConfig())

	ctx := context.Background()
	start := time.Now()
	result, err := solver.Solve(ctx, letterTiles, *deadline, *seed)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitBadArgs)
	}

	if *dbPath != "" {
		if err := recordRun(ctx, *dbPath, *tiles, *deadline, *seed, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record run in %s: %v\n", *dbPath, err)
		}
	}

	if *jsonOut {
		emitJSON(result)
	} else {
		emitHuman(*tiles, result, elapsed)
	}

	if !result.Success {
		os.Exit(exitNoSolve)
	}
	os.Exit(exitSuccess)
}

func recordRun(ctx context.Context, dbPath, tiles string, deadline time.Duration, seed int64, result domain.SolveResult) error {
	db, err := history.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	run := &history.SolveRun{
		Tiles:         tiles,
		DeadlineMS:    int64(deadline / time.Millisecond),
		Seed:          seed,
		Success:       result.Success,
		RemovedLetter: result.RemovedLetter,
		Placements:    result.Placements,
		Stats:         result.Stats,
	}
	return db.Store(ctx, run)
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.SampleEnglishDictionary(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.Load(f)
}

func emitJSON(result domain.SolveResult) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(result)
}

func emitHuman(tiles string, result domain.SolveResult, elapsed time.Duration) {
	if result.Success {
		fmt.Printf("SOLVED  %s\n", tiles)
		if result.RemovedLetter != nil {
			fmt.Printf("  dropped letter: %c\n", *result.RemovedLetter)
		}
		fmt.Printf("  placed %s tiles in %s\n",
			humanize.Comma(int64(len(result.Placements))), elapsed.Round(time.Millisecond))
	} else {
		fmt.Printf("NO SOLUTION  %s\n", tiles)
		fmt.Printf("  gave up after %s, deadline hit: %v\n", elapsed.Round(time.Millisecond), result.Stats.DeadlineHit)
	}
	fmt.Printf("  phase %d, %s attempts, %s combinations checked\n",
		result.Stats.Phase,
		humanize.Comma(int64(result.Stats.Attempts)),
		humanize.Comma(int64(result.Stats.CombosChecked)))
}
