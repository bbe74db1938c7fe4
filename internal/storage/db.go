package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"possales/internal"
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
CREATE TABLE IF NOT EXISTS files (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  provider TEXT NOT NULL,
  fileId TEXT NOT NULL,
  name TEXT,
  hash TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'fetched',
  rowCount INTEGER NOT NULL DEFAULT 0,
  rawRef TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(provider, fileId)
);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) UpsertFile(provider, fileID, name, hash, rawRef, status string) (internal.FileRow, error) {
	_, err := d.conn.Exec(`
INSERT INTO files (provider, fileId, name, hash, status, rawRef)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(provider, fileId) DO UPDATE SET
  name=excluded.name,
  hash=excluded.hash,
  rawRef=excluded.rawRef,
  updatedAt=CURRENT_TIMESTAMP
`, provider, fileID, name, hash, status, rawRef)
	if err != nil {
		return internal.FileRow{}, err
	}

	row, err := d.GetFile(provider, fileID)
	if err != nil {
		return internal.FileRow{}, err
	}
	if row == nil {
		return internal.FileRow{}, errors.New("failed to upsert file")
	}
	return *row, nil
}

func (d *DB) GetFile(provider, fileID string) (*internal.FileRow, error) {
	var row internal.FileRow
	err := d.conn.QueryRow(`
SELECT id, provider, fileId, name, hash, status, rowCount, rawRef
FROM files WHERE provider = ? AND fileId = ?
`, provider, fileID).Scan(
		&row.ID, &row.Provider, &row.FileID, &row.Name, &row.Hash, &row.Status, &row.RowCount, &row.RawRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) ListFilesByStatus(status string, limit int) ([]internal.FileRow, error) {
	rows, err := d.conn.Query(`
SELECT id, provider, fileId, name, hash, status, rowCount, rawRef
FROM files WHERE status = ? ORDER BY createdAt ASC LIMIT ?
`, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.FileRow
	for rows.Next() {
		var row internal.FileRow
		if err := rows.Scan(&row.ID, &row.Provider, &row.FileID, &row.Name, &row.Hash, &row.Status, &row.RowCount, &row.RawRef); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) UpdateFileStatus(fileID int, status string, rowCount int) error {
	_, err := d.conn.Exec(`
UPDATE files SET status = ?, rowCount = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?
`, status, rowCount, fileID)
	return err
}

func (d *DB) InsertRun(traceID string, counts map[string]int, timings map[string]float64) error {
	countsJSON, _ := json.Marshal(counts)
	timingsJSON, _ := json.Marshal(timings)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, countsJson, timingsJson) VALUES (?, ?, ?)`, traceID, string(countsJSON), string(timingsJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
