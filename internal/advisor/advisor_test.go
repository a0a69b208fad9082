package advisor

import (
	"testing"

	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

func newAdvisor(theta signal.Theta) *Advisor {
	return NewAdvisor(signal.NewContext(theta))
}

func TestStep(t *testing.T) {
	tests := []struct {
		name        string
		sig         signal.Signal
		wantEdge    graph.EdgeType
		wantStation string
	}{
		{
			"qualifying-drafts",
			signal.Signal{"confidence": 0.8, "info": 0.8, "risk": 0.2},
			graph.EdgeNormal, LabelDraft,
		},
		{
			"threshold-boundary-drafts",
			signal.Signal{"confidence": 0.7, "info": 0.7, "risk": 0.3},
			graph.EdgeNormal, LabelDraft,
		},
		{
			"low-confidence-researches",
			signal.Signal{"confidence": 0.6, "info": 0.8, "risk": 0.2},
			graph.EdgeAlternate, LabelResearch,
		},
		{
			"low-info-researches",
			signal.Signal{"confidence": 0.8, "info": 0.5, "risk": 0.2},
			graph.EdgeAlternate, LabelResearch,
		},
		{
			"high-risk-researches",
			signal.Signal{"confidence": 0.9, "info": 0.9, "risk": 0.4},
			graph.EdgeAlternate, LabelResearch,
		},
		{
			"explicit-no-exits",
			signal.Signal{"decision": "NO"},
			graph.EdgeExit, LabelDrop,
		},
		{
			"no-outranks-thresholds",
			signal.Signal{"decision": "NO", "confidence": 0.9, "info": 0.9, "risk": 0.1},
			graph.EdgeExit, LabelDrop,
		},
		{
			"yes-decision-falls-through",
			signal.Signal{"decision": "YES", "confidence": 0.9, "info": 0.9, "risk": 0.1},
			graph.EdgeNormal, LabelDraft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newAdvisor(signal.DefaultTheta()).Step(tt.sig)
			if got := res.Out["edge"]; got != tt.wantEdge {
				t.Errorf("edge: got %v, want %v", got, tt.wantEdge)
			}
			if got := res.Out["station"]; got != tt.wantStation {
				t.Errorf("station: got %v, want %v", got, tt.wantStation)
			}
			if !res.HasTag(string(tt.wantEdge)) {
				t.Errorf("tags: got %v, want %v", res.Tags, tt.wantEdge)
			}
		})
	}
}

func TestStepThetaDefaults(t *testing.T) {
	// Theta qualifies on its own, so an empty signal routes NORMAL.
	a := newAdvisor(signal.Theta{Confidence: 0.9, Info: 0.9, Risk: 0.1})
	res := a.Step(signal.Signal{})
	if got := res.Out["edge"]; got != graph.EdgeNormal {
		t.Errorf("edge: got %v, want %v", got, graph.EdgeNormal)
	}

	// A supplied field overrides its Theta default.
	res = a.Step(signal.Signal{"risk": 0.8})
	if got := res.Out["edge"]; got != graph.EdgeAlternate {
		t.Errorf("edge: got %v, want %v", got, graph.EdgeAlternate)
	}
}

func TestStepEntropyPassthrough(t *testing.T) {
	a := newAdvisor(signal.DefaultTheta())

	res := a.Step(signal.Signal{"confidence": 0.8, "info": 0.8, "risk": 0.2, "entropy": 0.15})
	if got := res.Out["entropy"]; got != 0.15 {
		t.Errorf("out.entropy: got %v, want 0.15", got)
	}
	// Entropy is contextual only, it never overrides the thresholds.
	if got := res.Out["edge"]; got != graph.EdgeNormal {
		t.Errorf("edge: got %v, want %v", got, graph.EdgeNormal)
	}

	res = a.Step(signal.Signal{"confidence": 0.8, "info": 0.8, "risk": 0.2})
	if _, ok := res.Out["entropy"]; ok {
		t.Error("out.entropy should be absent when the signal carries none")
	}
}

func TestEval(t *testing.T) {
	a := newAdvisor(signal.DefaultTheta())
	stepped := a.Step(signal.Signal{"decision": "NO"})

	cached := a.Eval()
	if cached.Out["edge"] != stepped.Out["edge"] {
		t.Errorf("eval diverged from step: %v vs %v", cached.Out["edge"], stepped.Out["edge"])
	}
}
