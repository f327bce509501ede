package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"gramdiff/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL UNIQUE,
  followersJson TEXT NOT NULL,
  followingJson TEXT NOT NULL,
  diffJson TEXT NOT NULL,
  warningsJson TEXT NOT NULL,
  followersCount INTEGER NOT NULL,
  followingCount INTEGER NOT NULL,
  diffCount INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(traceID string, followers, following, diff, warnings []string) (int, error) {
	followersJSON, _ := json.Marshal(emptyIfNil(followers))
	followingJSON, _ := json.Marshal(emptyIfNil(following))
	diffJSON, _ := json.Marshal(emptyIfNil(diff))
	warningsJSON, _ := json.Marshal(emptyIfNil(warnings))

	res, err := d.conn.Exec(`
INSERT INTO runs (traceId, followersJson, followingJson, diffJson, warningsJson, followersCount, followingCount, diffCount)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, traceID, string(followersJSON), string(followingJSON), string(diffJSON), string(warningsJSON), len(followers), len(following), len(diff))
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (d *DB) GetRun(id int) (*internal.RunRow, error) {
	var row internal.RunRow
	var followersJSON, followingJSON, diffJSON, warningsJSON string
	err := d.conn.QueryRow(`
SELECT id, traceId, followersJson, followingJson, diffJson, warningsJson, createdAt
FROM runs WHERE id = ?
`, id).Scan(&row.ID, &row.TraceID, &followersJSON, &followingJSON, &diffJSON, &warningsJSON, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_ = json.Unmarshal([]byte(followersJSON), &row.Followers)
	_ = json.Unmarshal([]byte(followingJSON), &row.Following)
	_ = json.Unmarshal([]byte(diffJSON), &row.NotFollowingBack)
	_ = json.Unmarshal([]byte(warningsJSON), &row.Warnings)
	return &row, nil
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, followersJson, followingJson, diffJson, warningsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		var followersJSON, followingJSON, diffJSON, warningsJSON string
		if err := rows.Scan(&row.ID, &row.TraceID, &followersJSON, &followingJSON, &diffJSON, &warningsJSON, &row.CreatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(followersJSON), &row.Followers)
		_ = json.Unmarshal([]byte(followingJSON), &row.Following)
		_ = json.Unmarshal([]byte(diffJSON), &row.NotFollowingBack)
		_ = json.Unmarshal([]byte(warningsJSON), &row.Warnings)
		out = append(out, row)
	}
	return out, rows.Err()
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
