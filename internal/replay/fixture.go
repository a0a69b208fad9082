package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-router/internal/graph"
	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Theta           FixtureTheta            `json:"theta"`
	Graph           FixtureGraph            `json:"graph"`
	Turns           []FixtureTurn           `json:"turns"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureTheta mirrors signal.Theta with JSON tags.
type FixtureTheta struct {
	Confidence float64 `json:"confidence"`
	Info       float64 `json:"info"`
	Risk       float64 `json:"risk"`
}

// FixtureGraph is the JSON-serializable graph definition.
type FixtureGraph struct {
	Stations []FixtureStation `json:"stations"`
	Edges    []FixtureEdge    `json:"edges"`
}

// FixtureStation mirrors graph.Station with JSON tags.
type FixtureStation struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// FixtureEdge mirrors graph.Edge with JSON tags.
type FixtureEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Type      string `json:"type"`
	Condition string `json:"condition,omitempty"`
}

// FixtureTurn is one recorded input signal.
type FixtureTurn struct {
	TurnID string         `json:"turn_id"`
	Signal map[string]any `json:"signal"`
}

// FixtureExpectedResult captures the expected landing station per turn.
type FixtureExpectedResult struct {
	TurnID  string `json:"turn_id"`
	Station string `json:"station"`
	Edge    string `json:"edge,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToTheta converts a FixtureTheta to a domain Theta.
func (t *FixtureTheta) ToTheta() signal.Theta {
	return signal.Theta{
		Confidence: t.Confidence,
		Info:       t.Info,
		Risk:       t.Risk,
	}
}

// ToGraph converts a FixtureGraph to a domain Graph.
func (fg *FixtureGraph) ToGraph() graph.Graph {
	g := graph.Graph{
		Stations: make([]graph.Station, len(fg.Stations)),
		Edges:    make([]graph.Edge, len(fg.Edges)),
	}
	for i, s := range fg.Stations {
		g.Stations[i] = graph.Station{ID: s.ID, Type: graph.StationType(s.Type)}
	}
	for i, e := range fg.Edges {
		g.Edges[i] = graph.Edge{
			From:      e.From,
			To:        e.To,
			Type:      graph.EdgeType(e.Type),
			Condition: e.Condition,
		}
	}
	return g
}

// ToTurn converts a FixtureTurn to a domain Turn.
func (ft *FixtureTurn) ToTurn() Turn {
	return Turn{
		TurnID: ft.TurnID,
		Signal: signal.Signal(ft.Signal),
	}
}

// #endregion fixture-loader
