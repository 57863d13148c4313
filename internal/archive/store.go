// Package archive persists snapshot buffers in SQLite so a restarted
// arbiter can resume from its most recent capture. The byte-buffer contract
// stays with the snapshot codec; this layer only stores opaque blobs.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id  TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	byte_len     INTEGER NOT NULL,
	note         TEXT,
	data         BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created
	ON snapshots(created_at DESC);

CREATE TABLE IF NOT EXISTS escalation_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	handle       TEXT NOT NULL,
	intent_id    TEXT NOT NULL,
	escalation   TEXT NOT NULL,
	avg_entropy  REAL NOT NULL,
	cosine_sim   REAL NOT NULL,
	gate_shift   REAL NOT NULL,
	rule_hits    INTEGER NOT NULL,
	flags        TEXT,
	created_at   TEXT NOT NULL
);
`
// #endregion schema

// #region entry
// Entry describes one stored snapshot, without its payload.
type Entry struct {
	SnapshotID string
	CreatedAt  time.Time
	ByteLen    int
	Note       string
}

// #endregion entry

// #region store-struct
// Store manages the snapshot archive in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens the archive database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
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
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region save
// Save stores a snapshot blob and returns its generated id.
func (s *Store) Save(data []byte, note string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO snapshots (snapshot_id, created_at, byte_len, note, data)
		 VALUES (?, ?, ?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), len(data), nullIfEmpty(note), data,
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	return id, nil
}
// #endregion save

// #region load
// Load returns the payload of a stored snapshot.
func (s *Store) Load(id string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM snapshots WHERE snapshot_id = ?`, id,
	).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	return data, nil
}
// #endregion load

// #region latest
// Latest returns the most recently saved snapshot's entry and payload.
// Returns sql.ErrNoRows (wrapped) when the archive is empty.
func (s *Store) Latest() (Entry, []byte, error) {
	var e Entry
	var createdStr string
	var note sql.NullString
	var data []byte

	err := s.db.QueryRow(
		`SELECT snapshot_id, created_at, byte_len, note, data
		 FROM snapshots ORDER BY created_at DESC, snapshot_id DESC LIMIT 1`,
	).Scan(&e.SnapshotID, &createdStr, &e.ByteLen, &note, &data)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("latest snapshot: %w", err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if note.Valid {
		e.Note = note.String
	}
	return e, data, nil
}
// #endregion latest

// #region list
// List returns the most recent snapshot entries, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT snapshot_id, created_at, byte_len, note
		 FROM snapshots ORDER BY created_at DESC, snapshot_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdStr string
		var note sql.NullString
		if err := rows.Scan(&e.SnapshotID, &createdStr, &e.ByteLen, &note); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if note.Valid {
			e.Note = note.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list

// #region prune
// Prune deletes all but the newest keep snapshots and reports how many rows
// were removed.
func (s *Store) Prune(keep int) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM snapshots WHERE snapshot_id NOT IN (
			SELECT snapshot_id FROM snapshots
			ORDER BY created_at DESC, snapshot_id DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return n, nil
}
// #endregion prune

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
