package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/logging"
	"github.com/danielpatrickdp/decision-router/internal/replay"
	"github.com/danielpatrickdp/decision-router/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to decision_router.db")
	last := flag.Int("last", 10, "number of most recent decisions to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath string, last int, outPath string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	g, err := st.LoadGraph()
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	if len(g.Stations) == 0 {
		return fmt.Errorf("no graph found in store")
	}

	entries, err := logging.Recent(st.DB(), last)
	if err != nil {
		return fmt.Errorf("query decisions: %w", err)
	}

	var records []logging.DecisionRecord
	for _, e := range entries {
		if e.SignalsJSON == "" {
			continue
		}
		var rec logging.DecisionRecord
		if err := json.Unmarshal([]byte(e.SignalsJSON), &rec); err != nil {
			continue
		}
		if rec.TurnID == "" {
			continue // not DecisionRecord format
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return fmt.Errorf("no DecisionRecord-format rows found in last %d entries", last)
	}

	fmt.Printf("Found %d DecisionRecord rows\n", len(records))

	fixture := buildFixture(g, records)
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region output

func buildFixture(g graph.Graph, records []logging.DecisionRecord) replay.Fixture {
	turns := make([]replay.FixtureTurn, len(records))
	expected := make([]replay.FixtureExpectedResult, len(records))

	for i, r := range records {
		turns[i] = replay.FixtureTurn{
			TurnID: r.TurnID,
			Signal: r.Signal,
		}
		expected[i] = replay.FixtureExpectedResult{
			TurnID:  r.TurnID,
			Station: r.Station,
			Edge:    r.EdgeType,
		}
	}

	fg := replay.FixtureGraph{}
	for _, s := range g.Stations {
		fg.Stations = append(fg.Stations, replay.FixtureStation{
			ID:   s.ID,
			Type: string(s.Type),
		})
	}
	for _, e := range g.Edges {
		fg.Edges = append(fg.Edges, replay.FixtureEdge{
			From:      e.From,
			To:        e.To,
			Type:      string(e.Type),
			Condition: e.Condition,
		})
	}

	return replay.Fixture{
		Description: fmt.Sprintf("Real session export: %d decision turns from production DB", len(records)),
		Theta: replay.FixtureTheta{
			Confidence: 0.5,
			Info:       0.5,
			Risk:       0.5,
		},
		Graph:           fg,
		Turns:           turns,
		ExpectedResults: expected,
	}
}

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d turns)\n", outPath, len(data), len(fixture.Turns))
	return nil
}

// #endregion output
