package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE decision_log (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		turn_id      TEXT NOT NULL,
		station      TEXT NOT NULL,
		edge_type    TEXT,
		choice       TEXT NOT NULL,
		entropy      REAL NOT NULL,
		stable       INTEGER NOT NULL DEFAULT 1,
		signals_json TEXT,
		created_at   TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// #endregion helpers

// #region log-decision-tests
func TestLogDecision_Success(t *testing.T) {
	db := setupDB(t)

	entry := DecisionEntry{
		TurnID:      "turn-1",
		Station:     "decision",
		EdgeType:    "NORMAL",
		Choice:      "RESEARCH",
		Entropy:     0.25,
		Stable:      true,
		SignalsJSON: `{"confidence":0.8}`,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM decision_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var station, choice string
	db.QueryRow("SELECT station, choice FROM decision_log").Scan(&station, &choice)
	if station != "decision" {
		t.Errorf("expected station 'decision', got %q", station)
	}
	if choice != "RESEARCH" {
		t.Errorf("expected choice 'RESEARCH', got %q", choice)
	}
}

func TestLogDecision_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)

	entry := DecisionEntry{
		TurnID:  "turn-2",
		Station: "start",
		Choice:  "RESEARCH",
	}

	before := time.Now().UTC()
	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM decision_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogDecision_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)

	entry := DecisionEntry{
		TurnID:  "turn-3",
		Station: "drop",
		Choice:  "NO",
		Entropy: 0.8,
	}

	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var edgeType, signalsJSON sql.NullString
	db.QueryRow("SELECT edge_type, signals_json FROM decision_log").Scan(&edgeType, &signalsJSON)
	if edgeType.Valid {
		t.Error("expected NULL edge_type for empty string")
	}
	if signalsJSON.Valid {
		t.Error("expected NULL signals_json for empty string")
	}
}

func TestLogDecision_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	entry := DecisionEntry{TurnID: "turn-4", Station: "start", Choice: "RESEARCH"}
	if err := LogDecision(db, entry); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-decision-tests

// #region recent-tests
func TestRecent(t *testing.T) {
	db := setupDB(t)

	for i, station := range []string{"start", "decision", "draft"} {
		entry := DecisionEntry{
			TurnID:    "turn",
			Station:   station,
			Choice:    "RESEARCH",
			Entropy:   float64(i) * 0.1,
			Stable:    true,
			CreatedAt: time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
		}
		if err := LogDecision(db, entry); err != nil {
			t.Fatalf("log decision %d: %v", i, err)
		}
	}

	entries, err := Recent(db, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest two, oldest first.
	if entries[0].Station != "decision" || entries[1].Station != "draft" {
		t.Errorf("unexpected order: %s, %s", entries[0].Station, entries[1].Station)
	}
}

func TestRecent_BadCreatedAt(t *testing.T) {
	db := setupDB(t)

	_, err := db.Exec(
		`INSERT INTO decision_log (turn_id, station, choice, entropy, stable, created_at)
		 VALUES ('turn-x', 'start', 'RESEARCH', 0.1, 1, 'not-a-timestamp')`,
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := Recent(db, 10); err == nil {
		t.Fatal("expected error for malformed created_at")
	}
}

// #endregion recent-tests

// #region null-if-empty-tests
func TestNullIfEmpty_Empty(t *testing.T) {
	if result := nullIfEmpty(""); result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestNullIfEmpty_NonEmpty(t *testing.T) {
	if result := nullIfEmpty("hello"); result != "hello" {
		t.Errorf("expected 'hello', got %v", result)
	}
}

// #endregion null-if-empty-tests
