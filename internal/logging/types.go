package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table.
type DecisionEntry struct {
	TurnID      string
	Station     string
	EdgeType    string // empty when the router stalled
	Choice      string
	Entropy     float64
	Stable      bool
	SignalsJSON string
	CreatedAt   time.Time
}

// #endregion decision-entry

// #region decision-record
// DecisionRecord captures the exact signal that fed a routing step.
// Serialized as JSON into decision_log.signals_json for deterministic replay.
type DecisionRecord struct {
	TurnID string         `json:"turn_id"`
	Signal map[string]any `json:"signal"`

	// Router output
	Station  string  `json:"station"`
	EdgeType string  `json:"edge_type,omitempty"`
	Entropy  float64 `json:"entropy"`
	Stable   bool    `json:"stable"`
}

// #endregion decision-record
