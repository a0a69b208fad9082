package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/decision-router/internal/logging"
	"github.com/danielpatrickdp/decision-router/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to decision_router.db")
	last := flag.Int("last", 20, "show N most recent decisions")
	station := flag.String("station", "", "filter decisions to one station")
	showGraph := flag.Bool("graph", false, "dump the stored graph")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/decision_router.db [--last N] [--station id] [--graph] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *showGraph {
		if err := runGraphMode(st, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runDecisionMode(st, *last, *station, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region graph-mode

type graphOutput struct {
	Stations []stationRow `json:"stations"`
	Edges    []edgeRow    `json:"edges"`
}

type stationRow struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type edgeRow struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Type      string `json:"type"`
	Condition string `json:"condition,omitempty"`
}

func runGraphMode(st *store.Store, jsonOut bool) error {
	g, err := st.LoadGraph()
	if err != nil {
		return err
	}
	if len(g.Stations) == 0 {
		fmt.Fprintln(os.Stderr, "no graph found")
		return nil
	}

	out := graphOutput{}
	for _, s := range g.Stations {
		out.Stations = append(out.Stations, stationRow{ID: s.ID, Type: string(s.Type)})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, edgeRow{
			From: e.From, To: e.To, Type: string(e.Type), Condition: e.Condition,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Stations:\n")
	for _, s := range out.Stations {
		fmt.Printf("  %-12s %s\n", s.ID, s.Type)
	}
	fmt.Printf("\nEdges:\n")
	for _, e := range out.Edges {
		cond := ""
		if e.Condition != "" {
			cond = " [" + e.Condition + "]"
		}
		fmt.Printf("  %-12s -> %-12s %s%s\n", e.From, e.To, e.Type, cond)
	}
	return nil
}

// #endregion graph-mode

// #region decision-mode

type decisionRow struct {
	TurnID    string  `json:"turn_id"`
	Station   string  `json:"station"`
	EdgeType  string  `json:"edge_type,omitempty"`
	Choice    string  `json:"choice"`
	Entropy   float64 `json:"entropy"`
	Stable    bool    `json:"stable"`
	CreatedAt string  `json:"created_at"`
}

func runDecisionMode(st *store.Store, last int, stationFilter string, jsonOut bool) error {
	entries, err := logging.Recent(st.DB(), last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found")
		return nil
	}

	var rows []decisionRow
	for _, e := range entries {
		if stationFilter != "" && e.Station != stationFilter {
			continue
		}
		rows = append(rows, decisionRow{
			TurnID:    e.TurnID,
			Station:   e.Station,
			EdgeType:  e.EdgeType,
			Choice:    e.Choice,
			Entropy:   e.Entropy,
			Stable:    e.Stable,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions match the filter")
		return nil
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-12s  %-10s  %-8s  %8s  %-6s  %s\n",
		"Turn", "Station", "Edge", "Choice", "Entropy", "Stable", "Time")
	fmt.Printf("%-12s+-%-12s+-%-10s+-%-8s+-%8s+-%-6s+-%s\n",
		"------------", "------------", "----------", "--------", "--------", "------", "--------------------")

	for _, r := range rows {
		edge := r.EdgeType
		if edge == "" {
			edge = "—"
		}
		fmt.Printf("%-12s  %-12s  %-10s  %-8s  %8.4f  %-6v  %s\n",
			shortID(r.TurnID), r.Station, edge, r.Choice, r.Entropy, r.Stable, r.CreatedAt)
	}
	return nil
}

// #endregion decision-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// #endregion output
