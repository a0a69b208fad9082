package store

// #region imports
import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/decision-router/internal/graph"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS stations (
	id            TEXT PRIMARY KEY,
	station_type  TEXT NOT NULL,
	position      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS station_edges (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	from_id       TEXT NOT NULL,
	to_id         TEXT NOT NULL,
	edge_type     TEXT NOT NULL,
	condition     TEXT,
	position      INTEGER NOT NULL,
	FOREIGN KEY (from_id) REFERENCES stations(id),
	FOREIGN KEY (to_id) REFERENCES stations(id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	turn_id       TEXT NOT NULL,
	station       TEXT NOT NULL,
	edge_type     TEXT,
	choice        TEXT NOT NULL,
	entropy       REAL NOT NULL,
	stable        INTEGER NOT NULL DEFAULT 1,
	signals_json  TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_edges_from ON station_edges(from_id);
CREATE INDEX IF NOT EXISTS idx_decision_log_turn ON decision_log(turn_id);
`

// #endregion schema

// #region store-struct
// Store persists graph definitions and the decision audit log in SQLite.
// The routing core never touches it; hosts load graphs from here and append
// decisions after each step.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region save-graph
// SaveGraph replaces the persisted graph definition atomically. Station and
// edge positions record declaration order, which traversal fallback depends on.
func (s *Store) SaveGraph(g graph.Graph) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM station_edges`); err != nil {
		return fmt.Errorf("clear edges: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM stations`); err != nil {
		return fmt.Errorf("clear stations: %w", err)
	}

	for i, st := range g.Stations {
		if _, err := tx.Exec(
			`INSERT INTO stations (id, station_type, position) VALUES (?, ?, ?)`,
			st.ID, string(st.Type), i,
		); err != nil {
			return fmt.Errorf("insert station %s: %w", st.ID, err)
		}
	}

	for i, e := range g.Edges {
		if _, err := tx.Exec(
			`INSERT INTO station_edges (from_id, to_id, edge_type, condition, position)
			 VALUES (?, ?, ?, ?, ?)`,
			e.From, e.To, string(e.Type), nullIfEmpty(e.Condition), i,
		); err != nil {
			return fmt.Errorf("insert edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return tx.Commit()
}

// #endregion save-graph

// #region load-graph
// LoadGraph reads the persisted graph definition in declaration order.
// An empty database yields an empty graph, not an error.
func (s *Store) LoadGraph() (graph.Graph, error) {
	var g graph.Graph

	rows, err := s.db.Query(
		`SELECT id, station_type FROM stations ORDER BY position ASC`,
	)
	if err != nil {
		return g, fmt.Errorf("load stations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, stype string
		if err := rows.Scan(&id, &stype); err != nil {
			return g, fmt.Errorf("scan station: %w", err)
		}
		g.Stations = append(g.Stations, graph.Station{ID: id, Type: graph.StationType(stype)})
	}
	if err := rows.Err(); err != nil {
		return g, err
	}

	edgeRows, err := s.db.Query(
		`SELECT from_id, to_id, edge_type, condition FROM station_edges ORDER BY position ASC`,
	)
	if err != nil {
		return g, fmt.Errorf("load edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var e graph.Edge
		var etype string
		var cond sql.NullString
		if err := edgeRows.Scan(&e.From, &e.To, &etype, &cond); err != nil {
			return g, fmt.Errorf("scan edge: %w", err)
		}
		e.Type = graph.EdgeType(etype)
		if cond.Valid {
			e.Condition = cond.String
		}
		g.Edges = append(g.Edges, e)
	}
	return g, edgeRows.Err()
}

// #endregion load-graph

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
