package entropy

// #region imports
import (
	"math"

	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #endregion

// #region constants

// Entropy weights: null density dominates, raw risk second, delta churn last.
const (
	weightNull  = 0.5
	weightRisk  = 0.3
	weightDelta = 0.2

	// stableMax is the highest entropy still classified as stable.
	stableMax = 0.6
)

// Tags emitted per classification.
const (
	TagStable = "STABLE"
	TagAlt    = "ALT"
)

// #endregion

// #region scorer

// Scorer turns an observation signal into a [0,1] disorder score and a
// stability verdict. It holds only a cache of the last computed result.
type Scorer struct {
	ctx  signal.Context
	last signal.Result
}

// NewScorer binds the shared context.
func NewScorer(ctx signal.Context) *Scorer {
	return &Scorer{ctx: ctx}
}

// #endregion

// #region step

// Step scores one signal. Missing numeric fields default to zero; the step
// never fails, high entropy is reported as ok=false with the ALT tag.
func (s *Scorer) Step(sig signal.Signal) signal.Result {
	nullRatio := nullRatio(sig)
	risk := signal.Clamp01(sig.Float("risk", 0))
	delta := signal.Clamp01(math.Abs(sig.Float("delta", 0)))

	e := signal.Clamp01(weightNull*nullRatio + weightRisk*risk + weightDelta*delta)

	res := signal.Result{
		OK:    e <= stableMax,
		Score: e,
		Out: map[string]any{
			"entropy": e,
			"nulls":   nullRatio,
		},
	}
	if res.OK {
		res.Tags = []string{TagStable}
	} else {
		res.Tags = []string{TagAlt}
	}

	s.last = res
	return res
}

// #endregion

// #region null-ratio

// nullRatio is the fraction of examined fields whose value is nil or an
// empty string. The reserved risk and delta fields are excluded from the
// count; a signal with no examined fields scores zero.
func nullRatio(sig signal.Signal) float64 {
	examined := 0
	nulls := 0
	for k, v := range sig {
		if k == "risk" || k == "delta" {
			continue
		}
		examined++
		if v == nil {
			nulls++
			continue
		}
		if str, ok := v.(string); ok && str == "" {
			nulls++
		}
	}
	if examined == 0 {
		return 0
	}
	return float64(nulls) / float64(examined)
}

// #endregion

// #region eval-export

// Eval returns the last computed result without re-scoring.
func (s *Scorer) Eval() signal.Result {
	return s.last
}

// Export returns a diagnostic snapshot of the scorer.
func (s *Scorer) Export() map[string]any {
	return map[string]any{
		"entropy": s.last.Score,
		"stable":  s.last.OK,
	}
}

// #endregion
