package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// migration is one ordered schema step
type migration struct {
	ID          int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		ID:          1,
		Description: "Create snapshots table",
		SQL: `
CREATE TABLE IF NOT EXISTS snapshots (
	slot     TEXT PRIMARY KEY,
	run_id   TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	body     TEXT NOT NULL
);`,
	},
	{
		ID:          2,
		Description: "Index snapshots by save time",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at DESC);`,
	},
}

// SQLiteStore keeps snapshots in a single SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and applies pending migrations
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	// One writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping save database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate save database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_version (
	version    INTEGER PRIMARY KEY,
	applied_at INTEGER NOT NULL
);`); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return err
	}

	for _, m := range migrations {
		if m.ID <= current {
			continue
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.ID, m.Description, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version, applied_at) VALUES (?, ?)`, m.ID, time.Now().Unix()); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: %w", m.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, slot string, snap Snapshot) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO snapshots (slot, run_id, saved_at, body) VALUES (?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET run_id = excluded.run_id, saved_at = excluded.saved_at, body = excluded.body`,
		slot, snap.RunID, snap.SavedAt.UnixNano(), string(body))
	if err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, slot string) (Snapshot, error) {
	if err := checkSlot(slot); err != nil {
		return Snapshot{}, err
	}

	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE slot = ?`, slot).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", slot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode %s: %w", slot, err)
	}
	return snap, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot, run_id, saved_at FROM snapshots`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var (
			info  Info
			nanos int64
		)
		if err := rows.Scan(&info.Slot, &info.RunID, &nanos); err != nil {
			return nil, fmt.Errorf("list saves: %w", err)
		}
		info.Name = DisplayName(info.Slot)
		info.SavedAt = time.Unix(0, nanos)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return sortNewestFirst(infos, parameter.SaveListLimit), nil
}

func (s *SQLiteStore) Delete(ctx context.Context, slot string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete %s: %w", slot, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", slot, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
