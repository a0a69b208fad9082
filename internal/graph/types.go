package graph

// #region station-type

// StationType classifies the workflow role of a station.
type StationType string

const (
	StationStart    StationType = "START"
	StationDecision StationType = "DECISION"
	StationDraft    StationType = "DRAFT"
	StationResearch StationType = "RESEARCH"
	StationDrop     StationType = "DROP"
	StationEnd      StationType = "END"
)

// #endregion

// #region edge-type

// EdgeType classifies how an edge is selected during traversal.
type EdgeType string

const (
	EdgeNormal    EdgeType = "NORMAL"
	EdgeAlternate EdgeType = "ALTERNATE"
	EdgeExit      EdgeType = "EXIT"
	EdgeLoop      EdgeType = "LOOP"
)

// #endregion

// #region station

// Station is a named node in the routing graph.
type Station struct {
	ID   string
	Type StationType
}

// #endregion

// #region edge

// Edge is a directed, typed connection between two stations. Condition is
// unevaluated metadata carried for host layers.
type Edge struct {
	From      string
	To        string
	Type      EdgeType
	Condition string
}

// #endregion

// #region graph

// Graph is a static set of stations and edges. Edge declaration order is
// significant: traversal falls back to the first declared outgoing edge.
type Graph struct {
	Stations []Station
	Edges    []Edge
}

// #endregion
