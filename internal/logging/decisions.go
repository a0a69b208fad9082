package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision
// LogDecision appends a routing decision to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	stable := 0
	if entry.Stable {
		stable = 1
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (turn_id, station, edge_type, choice, entropy, stable, signals_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.TurnID,
		entry.Station,
		nullIfEmpty(entry.EdgeType),
		entry.Choice,
		entry.Entropy,
		stable,
		nullIfEmpty(entry.SignalsJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region recent
// Recent returns the newest decisions in insertion order, oldest first.
func Recent(db *sql.DB, limit int) ([]DecisionEntry, error) {
	rows, err := db.Query(
		`SELECT turn_id, station, edge_type, choice, entropy, stable, signals_json, created_at
		 FROM (SELECT * FROM decision_log ORDER BY id DESC LIMIT ?)
		 ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var edgeType, signalsJSON sql.NullString
		var stable int
		var createdStr string
		if err := rows.Scan(&e.TurnID, &e.Station, &edgeType, &e.Choice, &e.Entropy, &stable, &signalsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		if edgeType.Valid {
			e.EdgeType = edgeType.String
		}
		if signalsJSON.Valid {
			e.SignalsJSON = signalsJSON.String
		}
		e.Stable = stable != 0
		created, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", e.TurnID, err)
		}
		e.CreatedAt = created
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
