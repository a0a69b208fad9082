package advisor

// #region imports
import (
	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #endregion

// #region constants

// Routing thresholds. Fixed constants of the advisor, never mutated at runtime.
const (
	minConfidence = 0.7
	minInfo       = 0.7
	maxRisk       = 0.3
)

// Station labels attached to each routing class.
const (
	LabelDraft    = "Draft Station"
	LabelResearch = "Research Station"
	LabelDrop     = "Drop Station"
)

// DecisionNo is the literal decision value that forces an exit.
const DecisionNo = "NO"

// #endregion

// #region advisor

// Advisor converts confidence/information/risk measures into one of the
// routing classes NORMAL, ALTERNATE, or EXIT.
type Advisor struct {
	ctx  signal.Context
	last signal.Result
}

// NewAdvisor binds the shared context; absent signal fields default to the
// bound Theta values.
func NewAdvisor(ctx signal.Context) *Advisor {
	return &Advisor{ctx: ctx}
}

// #endregion

// #region step

// Step classifies one signal. First match wins: an explicit NO decision
// exits, a high-confidence low-risk signal drafts, everything else routes
// to research.
func (a *Advisor) Step(sig signal.Signal) signal.Result {
	confidence := signal.Clamp01(sig.Float("confidence", a.ctx.Theta.Confidence))
	info := signal.Clamp01(sig.Float("info", a.ctx.Theta.Info))
	risk := signal.Clamp01(sig.Float("risk", a.ctx.Theta.Risk))

	edge := graph.EdgeAlternate
	station := LabelResearch

	decision, _ := sig.String("decision")
	switch {
	case decision == DecisionNo:
		edge = graph.EdgeExit
		station = LabelDrop
	case confidence >= minConfidence && info >= minInfo && risk <= maxRisk:
		edge = graph.EdgeNormal
		station = LabelDraft
	}

	out := map[string]any{
		"edge":    edge,
		"station": station,
	}
	// Upstream entropy never overrides the thresholds, only travels along
	// as context.
	if e, ok := sig["entropy"]; ok {
		out["entropy"] = e
	}

	res := signal.Result{
		OK:    true,
		Score: confidence,
		Tags:  []string{string(edge)},
		Out:   out,
	}

	a.last = res
	return res
}

// #endregion

// #region eval-export

// Eval returns the last computed result without re-classification.
func (a *Advisor) Eval() signal.Result {
	return a.last
}

// Export returns a diagnostic snapshot of the advisor.
func (a *Advisor) Export() map[string]any {
	return map[string]any{
		"edge":    a.last.Out["edge"],
		"station": a.last.Out["station"],
	}
}

// #endregion
