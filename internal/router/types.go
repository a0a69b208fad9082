package router

// #region imports
import (
	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #endregion

// #region step-outcome

// StepOutcome is the per-input transition result: the station after the
// move, the edge taken (nil when the router stalled), and the raw
// sub-results for observability.
type StepOutcome struct {
	Station string
	Edge    *graph.Edge
	Scorer  signal.Result
	Advisor signal.Result
	Ledger  signal.Result
}

// #endregion
