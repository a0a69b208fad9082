package graph

// #region start

// Start returns the ID of the station tagged START, or the first declared
// station when none is tagged. An empty graph yields "".
func (g Graph) Start() string {
	for _, s := range g.Stations {
		if s.Type == StationStart {
			return s.ID
		}
	}
	if len(g.Stations) > 0 {
		return g.Stations[0].ID
	}
	return ""
}

// #endregion

// #region station-by-id

// StationByID looks up a station by identifier.
func (g Graph) StationByID(id string) (Station, bool) {
	for _, s := range g.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// #endregion

// #region edges-from

// EdgesFrom returns all outgoing edges of a station in declaration order.
func (g Graph) EdgesFrom(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// #endregion

// #region default-workflow

// DefaultWorkflow returns the canonical five-station decision workflow:
// a draft path, a research retry loop, and a drop exit.
func DefaultWorkflow() Graph {
	return Graph{
		Stations: []Station{
			{ID: "start", Type: StationStart},
			{ID: "decision", Type: StationDecision},
			{ID: "draft", Type: StationDraft},
			{ID: "research", Type: StationResearch},
			{ID: "drop", Type: StationDrop},
			{ID: "end", Type: StationEnd},
		},
		Edges: []Edge{
			{From: "start", To: "decision", Type: EdgeNormal},
			{From: "decision", To: "draft", Type: EdgeNormal},
			{From: "decision", To: "research", Type: EdgeAlternate},
			{From: "decision", To: "drop", Type: EdgeExit},
			{From: "research", To: "decision", Type: EdgeLoop},
			{From: "draft", To: "end", Type: EdgeNormal},
		},
	}
}

// #endregion
