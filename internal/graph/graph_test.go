package graph

import (
	"testing"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		want string
	}{
		{
			"tagged-start",
			Graph{Stations: []Station{
				{ID: "b", Type: StationDecision},
				{ID: "a", Type: StationStart},
			}},
			"a",
		},
		{
			"no-start-uses-first",
			Graph{Stations: []Station{
				{ID: "x", Type: StationDecision},
				{ID: "y", Type: StationEnd},
			}},
			"x",
		},
		{"empty-graph", Graph{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Start(); got != tt.want {
				t.Errorf("Start: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStationByID(t *testing.T) {
	g := DefaultWorkflow()

	s, ok := g.StationByID("decision")
	if !ok {
		t.Fatal("expected decision station to exist")
	}
	if s.Type != StationDecision {
		t.Errorf("type: got %q, want %q", s.Type, StationDecision)
	}

	if _, ok := g.StationByID("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestEdgesFromOrder(t *testing.T) {
	g := DefaultWorkflow()

	edges := g.EdgesFrom("decision")
	if len(edges) != 3 {
		t.Fatalf("expected 3 outgoing edges, got %d", len(edges))
	}

	// Declaration order must be preserved: traversal fallback depends on it.
	wantTypes := []EdgeType{EdgeNormal, EdgeAlternate, EdgeExit}
	for i, e := range edges {
		if e.Type != wantTypes[i] {
			t.Errorf("edge %d: got type %q, want %q", i, e.Type, wantTypes[i])
		}
	}

	if edges := g.EdgesFrom("end"); len(edges) != 0 {
		t.Errorf("end is terminal, got %d edges", len(edges))
	}
}
