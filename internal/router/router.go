package router

// #region imports
import (
	"log"

	"github.com/danielpatrickdp/decision-router/internal/advisor"
	"github.com/danielpatrickdp/decision-router/internal/entropy"
	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/ledger"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #endregion

// #region router-struct

// Router drives a static station graph from observation signals. It owns
// private scorer, advisor, and ledger instances and advances one current
// station per Step call. A Router is single-session state: callers must
// serialize Step calls per instance; distinct instances are independent.
type Router struct {
	graph   graph.Graph
	scorer  *entropy.Scorer
	advisor *advisor.Advisor
	ledger  *ledger.Ledger
	current string
}

// #endregion

// #region constructor

// New wires a router over the given graph. No connectivity validation is
// performed: disconnected or cyclic graphs are legal, an empty graph simply
// stalls with an empty current station.
func New(g graph.Graph, ctx signal.Context) *Router {
	if ctx.Now == nil {
		ctx = signal.NewContext(ctx.Theta)
	}
	return &Router{
		graph:   g,
		scorer:  entropy.NewScorer(ctx),
		advisor: advisor.NewAdvisor(ctx),
		ledger:  ledger.NewLedger(ctx, 0),
		current: g.Start(),
	}
}

// #endregion

// #region step

// Step runs one logical transaction: score the signal, classify the route,
// write the ledger entry, then advance along the matching edge. When no
// edge of the chosen class leaves the current station, the first declared
// outgoing edge is taken; with no outgoing edge at all the station holds.
func (r *Router) Step(sig signal.Signal) StepOutcome {
	sres := r.scorer.Step(sig)

	merged := sig.Clone()
	merged["entropy"] = sres.Out["entropy"]
	ares := r.advisor.Step(merged)

	edgeClass, _ := ares.Out["edge"].(graph.EdgeType)

	choice := ledger.ChoiceResearch
	if edgeClass == graph.EdgeExit {
		choice = ledger.ChoiceNo
	}
	lres := r.ledger.Step(ledger.StepInput{
		Station: r.current,
		Choice:  choice,
		Tags:    ares.Tags,
	})

	taken := r.pickEdge(edgeClass)
	if taken != nil {
		r.current = taken.To
	}

	edgeName := "none"
	if taken != nil {
		edgeName = string(taken.Type)
	}
	log.Printf("[ROUTER] step: entropy=%.2f class=%s edge=%s station=%s",
		sres.Score, edgeClass, edgeName, r.current)

	return StepOutcome{
		Station: r.current,
		Edge:    taken,
		Scorer:  sres,
		Advisor: ares,
		Ledger:  lres,
	}
}

// pickEdge finds the first outgoing edge matching the advisor's class, then
// falls back to the first declared outgoing edge.
func (r *Router) pickEdge(class graph.EdgeType) *graph.Edge {
	outgoing := r.graph.EdgesFrom(r.current)
	for i := range outgoing {
		if outgoing[i].Type == class {
			return &outgoing[i]
		}
	}
	if len(outgoing) > 0 {
		return &outgoing[0]
	}
	return nil
}

// #endregion

// #region accessors

// GetCurrent returns the current station identifier. Empty for an empty graph.
func (r *Router) GetCurrent() string {
	return r.current
}

// GetStation is a read-only graph accessor.
func (r *Router) GetStation(id string) (graph.Station, bool) {
	return r.graph.StationByID(id)
}

// GetEdges returns the outgoing edges of a station in declaration order.
func (r *Router) GetEdges(from string) []graph.Edge {
	return r.graph.EdgesFrom(from)
}

// Ledger exposes the read-only decision audit facade.
func (r *Router) Ledger() ledger.View {
	return r.ledger
}

// #endregion

// #region eval-export

// Eval aggregates the three sub-components' last results without
// recomputation. OK requires every sub-result to be ok.
func (r *Router) Eval() signal.Result {
	sres := r.scorer.Eval()
	ares := r.advisor.Eval()
	lres := r.ledger.Eval()

	return signal.Result{
		OK:    sres.OK && ares.OK && lres.OK,
		Score: sres.Score,
		Out: map[string]any{
			"scorer":  sres,
			"advisor": ares,
			"ledger":  lres,
		},
	}
}

// Export aggregates all component snapshots plus the current station.
func (r *Router) Export() map[string]any {
	return map[string]any{
		"station": r.current,
		"scorer":  r.scorer.Export(),
		"advisor": r.advisor.Export(),
		"ledger":  r.ledger.Export(),
	}
}

// #endregion
