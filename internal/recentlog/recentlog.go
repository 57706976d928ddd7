// Package recentlog persists recently created recipes in a bounded
// append-only SQLite journal. The catalog hydrates from it at startup and
// appends to it on every same-session creation, making the journal the
// single fallback path for "don't lose a just-created item if no listing
// view was mounted yet".
package recentlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cookpedia/pantry/pkg/types"
)

// maxEntries bounds the journal; the oldest rows are trimmed on append.
const maxEntries = 20

// schemaVersion is stored per row. Rows written by an unknown schema are
// skipped on read rather than failing the open.
const schemaVersion = 1

const createJournal = `CREATE TABLE IF NOT EXISTS recent_posts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id TEXT NOT NULL,
    schema_version INTEGER NOT NULL,
    record TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// Journal is a bounded append-only log of created recipes.
type Journal struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open creates or opens the journal database under dataDir.
func Open(dataDir string) (*Journal, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "recentlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createJournal); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Append writes a recipe to the journal and trims it to the entry bound.
func (j *Journal) Append(r types.Recipe) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return types.ErrClosed
	}

	record, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = j.db.Exec(
		`INSERT INTO recent_posts (recipe_id, schema_version, record, created_at) VALUES (?, ?, ?, ?)`,
		r.ID, schemaVersion, string(record), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	_, err = j.db.Exec(
		`DELETE FROM recent_posts WHERE seq NOT IN (SELECT seq FROM recent_posts ORDER BY seq DESC LIMIT ?)`,
		maxEntries,
	)
	if err != nil {
		return fmt.Errorf("trim journal: %w", err)
	}
	return nil
}

// Recent returns the journaled recipes, newest first. Rows with an unknown
// schema version or an unparseable record are skipped.
func (j *Journal) Recent() ([]types.Recipe, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil, types.ErrClosed
	}

	rows, err := j.db.Query(
		`SELECT schema_version, record FROM recent_posts ORDER BY seq DESC LIMIT ?`,
		maxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []types.Recipe
	for rows.Next() {
		var version int
		var record string
		if err := rows.Scan(&version, &record); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		if version != schemaVersion {
			continue
		}
		var r types.Recipe
		if err := json.Unmarshal([]byte(record), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle. Idempotent; operations after Close
// return ErrClosed.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true
	return j.db.Close()
}
