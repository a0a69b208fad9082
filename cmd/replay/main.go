package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-router/internal/logging"
	"github.com/danielpatrickdp/decision-router/internal/replay"
	"github.com/danielpatrickdp/decision-router/internal/signal"
	"github.com/danielpatrickdp/decision-router/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to decision_router.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/decision_router.db")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

func runDBMode(dbPath string) int {
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	g, err := st.LoadGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load graph: %v\n", err)
		return 2
	}
	if len(g.Stations) == 0 {
		fmt.Fprintln(os.Stderr, "no graph found in store")
		return 2
	}

	decisions, err := logging.Recent(st.DB(), 1<<20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query decisions: %v\n", err)
		return 2
	}
	if len(decisions) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found in decision_log")
		return 2
	}

	turns := make([]replay.Turn, 0, len(decisions))
	expected := make([]replay.FixtureExpectedResult, 0, len(decisions))
	for _, d := range decisions {
		turn := replay.Turn{TurnID: d.TurnID}
		if d.SignalsJSON != "" {
			var rec logging.DecisionRecord
			if err := json.Unmarshal([]byte(d.SignalsJSON), &rec); err == nil {
				turn.Signal = signal.Signal(rec.Signal)
			}
		}
		turns = append(turns, turn)
		expected = append(expected, replay.FixtureExpectedResult{
			TurnID:  d.TurnID,
			Station: d.Station,
			Edge:    d.EdgeType,
		})
	}

	results := replay.Replay(g, signal.DefaultTheta(), turns)
	return printComparison(results, expected)
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	turns := make([]replay.Turn, len(f.Turns))
	for i := range f.Turns {
		turns[i] = f.Turns[i].ToTurn()
	}

	results := replay.Replay(f.Graph.ToGraph(), f.Theta.ToTheta(), turns)
	return printComparison(results, f.ExpectedResults)
}

// #endregion fixture-mode

// #region output

// printComparison outputs a per-turn comparison table and returns exit code.
func printComparison(results []replay.ReplayResult, expected []replay.FixtureExpectedResult) int {
	fmt.Printf("%-12s| %-15s| %-15s| %s\n", "Turn", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-15s+%-15s+%s\n",
		"------------", "----------------", "----------------", "------")

	total := len(results)
	if len(expected) < total {
		total = len(expected)
	}

	matches := 0
	for i := 0; i < total; i++ {
		exp := expected[i]
		got := results[i]
		match := "DIFF"
		if got.Station == exp.Station && (exp.Edge == "" || got.Edge == exp.Edge) {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-15s| %-15s| %s\n", got.TurnID, exp.Station, got.Station, match)
	}

	diverge := total - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", total, matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion output
