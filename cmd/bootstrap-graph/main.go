package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/store"
)

// #region main
func main() {
	force := flag.Bool("force", false, "overwrite an existing graph")
	flag.Parse()

	dbPath := envOr("ROUTER_DB", "decision_router.db")

	fmt.Println("=== Graph Bootstrap Tool ===")
	fmt.Printf("  DB: %s\n", dbPath)

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	existing, err := st.LoadGraph()
	if err != nil {
		log.Fatalf("load graph: %v", err)
	}
	if len(existing.Stations) > 0 && !*force {
		fmt.Printf("Graph already present (%d stations, %d edges). Use --force to overwrite.\n",
			len(existing.Stations), len(existing.Edges))
		return
	}

	g := graph.DefaultWorkflow()
	if err := st.SaveGraph(g); err != nil {
		log.Fatalf("save graph: %v", err)
	}

	fmt.Println("\n--- Stations ---")
	for _, s := range g.Stations {
		fmt.Printf("  %-10s %s\n", s.ID, s.Type)
	}

	fmt.Println("\n--- Edges ---")
	for _, e := range g.Edges {
		cond := ""
		if e.Condition != "" {
			cond = " [" + e.Condition + "]"
		}
		fmt.Printf("  %-10s -> %-10s %s%s\n", e.From, e.To, e.Type, cond)
	}

	fmt.Printf("\n=== Bootstrap Complete ===\n")
	fmt.Printf("  Stations: %d\n", len(g.Stations))
	fmt.Printf("  Edges: %d\n", len(g.Edges))
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
