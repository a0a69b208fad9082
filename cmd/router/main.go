package main

// #region imports
import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/logging"
	"github.com/danielpatrickdp/decision-router/internal/router"
	"github.com/danielpatrickdp/decision-router/internal/signal"
	"github.com/danielpatrickdp/decision-router/internal/store"
)

// #endregion

// #region main
func main() {
	dbPath := envOr("ROUTER_DB", "decision_router.db")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	g, err := st.LoadGraph()
	if err != nil {
		log.Fatalf("failed to load graph: %v", err)
	}
	if len(g.Stations) == 0 {
		log.Println("No graph found in store, seeding default workflow...")
		g = graph.DefaultWorkflow()
		if err := st.SaveGraph(g); err != nil {
			log.Fatalf("failed to seed graph: %v", err)
		}
	}

	r := router.New(g, signal.NewContext(signal.DefaultTheta()))

	fmt.Println("Decision Router ready.")
	fmt.Printf("  DB: %s | Stations: %d | Start: %s\n", dbPath, len(g.Stations), r.GetCurrent())
	fmt.Println("Enter one JSON signal per line (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	turnNum := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		var sig signal.Signal
		if err := json.Unmarshal([]byte(line), &sig); err != nil {
			fmt.Printf("  bad signal: %v\n", err)
			continue
		}

		turnNum++
		turnID := fmt.Sprintf("turn-%d", turnNum)

		from := r.GetCurrent()
		out := r.Step(sig)

		edgeName := "(stalled)"
		if out.Edge != nil {
			edgeName = string(out.Edge.Type)
		}
		fmt.Printf("  %s: %s → %s via %s | entropy=%.2f stable=%v\n",
			turnID, from, out.Station, edgeName, out.Scorer.Score, out.Scorer.OK)

		persistDecision(st, turnID, sig, out)
	}

	snap := r.Export()
	fmt.Printf("Session ended at station %v after %d turns.\n", snap["station"], turnNum)
}

// #endregion main

// #region persist

// persistDecision appends the step outcome to decision_log; a write failure
// is logged, never fatal to the session.
func persistDecision(st *store.Store, turnID string, sig signal.Signal, out router.StepOutcome) {
	rec := logging.DecisionRecord{
		TurnID:  turnID,
		Signal:  sig,
		Station: out.Station,
		Entropy: out.Scorer.Score,
		Stable:  out.Scorer.OK,
	}
	if out.Edge != nil {
		rec.EdgeType = string(out.Edge.Type)
	}

	sigJSON, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[ROUTER] marshal decision record: %v", err)
		return
	}

	choice := "RESEARCH"
	if out.Edge != nil && out.Edge.Type == graph.EdgeExit {
		choice = "NO"
	}

	entry := logging.DecisionEntry{
		TurnID:      turnID,
		Station:     out.Station,
		EdgeType:    rec.EdgeType,
		Choice:      choice,
		Entropy:     out.Scorer.Score,
		Stable:      out.Scorer.OK,
		SignalsJSON: string(sigJSON),
	}
	if err := logging.LogDecision(st.DB(), entry); err != nil {
		log.Printf("[ROUTER] failed to persist decision: %v", err)
	}
}

// #endregion persist

// #region helpers
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// #endregion helpers
