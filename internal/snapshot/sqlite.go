// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// SQLiteStore keeps all of a board's snapshots in a single SQLite database.
// Each row holds the metadata columns List needs plus the full snapshot
// document as JSON.
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewSQLiteStore opens or creates the snapshot database at path and
// ensures the schema exists.
func NewSQLiteStore(path string, board types.BoardConfig) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		timestamp TEXT PRIMARY KEY,
		board_name TEXT,
		section_name TEXT,
		node_count INTEGER,
		created_at TEXT,
		document TEXT NOT NULL
	)`)
	return err
}

// Save upserts the snapshot row keyed by timestamp, so retried saves
// replace rather than duplicate. The locator is path#timestamp.
func (s *SQLiteStore) Save(snap *types.Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshots (timestamp, board_name, section_name, node_count, created_at, document)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(timestamp) DO UPDATE SET
			board_name=excluded.board_name, section_name=excluded.section_name,
			node_count=excluded.node_count, created_at=excluded.created_at,
			document=excluded.document`,
		snap.Timestamp, snap.BoardName, snap.SectionName, len(snap.Nodes),
		s.now().Format(time.RFC3339), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("inserting snapshot: %w", err)
	}
	return fmt.Sprintf("%s#%s", s.path, snap.Timestamp), nil
}

// Load reads one snapshot by timestamp, or the most recent when timestamp
// is empty. A missing snapshot returns (nil, nil).
func (s *SQLiteStore) Load(timestamp string) (*types.Snapshot, error) {
	var row *sql.Row
	if timestamp == "" {
		row = s.db.QueryRow(`SELECT document FROM snapshots ORDER BY timestamp DESC LIMIT 1`)
	} else {
		row = s.db.QueryRow(`SELECT document FROM snapshots WHERE timestamp = ?`, timestamp)
	}

	var document string
	if err := row.Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}

	var snap types.Snapshot
	if err := json.Unmarshal([]byte(document), &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", timestamp, err)
	}
	return &snap, nil
}

// List returns snapshot metadata newest first. The timestamp doubles as
// the locator within the database, so Filename carries it.
func (s *SQLiteStore) List() ([]types.IndexEntry, error) {
	rows, err := s.db.Query(
		`SELECT timestamp, section_name, node_count, created_at
		 FROM snapshots ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var entries []types.IndexEntry
	for rows.Next() {
		var e types.IndexEntry
		if err := rows.Scan(&e.Timestamp, &e.SectionName, &e.NodeCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		e.Filename = e.Timestamp
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
