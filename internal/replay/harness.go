package replay

import (
	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/router"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #region types
// Turn represents a single recorded input for replay.
type Turn struct {
	TurnID string
	Signal signal.Signal
}

// ReplayResult captures the outcome of replaying one turn through the router.
type ReplayResult struct {
	TurnID  string
	Station string
	Edge    string // "" when the router stalled
	Entropy float64
	Stable  bool
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalTurns   int
	Matches      int
	Divergences  int
	FinalStation string
}

// #endregion types

// #region replay
// Replay feeds the recorded turns through a fresh router over the given
// graph and theta. Deterministic: the same turns land on the same stations.
func Replay(g graph.Graph, theta signal.Theta, turns []Turn) []ReplayResult {
	r := router.New(g, signal.NewContext(theta))
	results := make([]ReplayResult, 0, len(turns))

	for _, turn := range turns {
		out := r.Step(turn.Signal)

		res := ReplayResult{
			TurnID:  turn.TurnID,
			Station: out.Station,
			Entropy: out.Scorer.Score,
			Stable:  out.Scorer.OK,
		}
		if out.Edge != nil {
			res.Edge = string(out.Edge.Type)
		}
		results = append(results, res)
	}

	return results
}

// Summarize compares replayed landing stations against the expected ones.
// Expected edge classes are checked only when the expectation names one.
func Summarize(results []ReplayResult, expected []FixtureExpectedResult) ReplaySummary {
	s := ReplaySummary{TotalTurns: len(results)}
	if len(results) > 0 {
		s.FinalStation = results[len(results)-1].Station
	}

	n := len(results)
	if len(expected) < n {
		n = len(expected)
	}
	for i := 0; i < n; i++ {
		if resultMatches(results[i], expected[i]) {
			s.Matches++
		} else {
			s.Divergences++
		}
	}
	s.Divergences += len(results) - n

	return s
}

func resultMatches(got ReplayResult, want FixtureExpectedResult) bool {
	if got.Station != want.Station {
		return false
	}
	if want.Edge != "" && got.Edge != want.Edge {
		return false
	}
	return true
}

// #endregion replay
