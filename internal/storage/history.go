package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/cycle"
	_ "modernc.org/sqlite"
)

const historyFileName = "history.db"

// HistoryEntry is one recorded window result.
type HistoryEntry struct {
	ID              int64
	Kind            cycle.ResultKind
	ClickCount      int
	AllowSeconds    int
	ProhibitSeconds int
	RecordedAt      time.Time
}

// History provides SQLite-backed persistence for window results.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the history database under the
// user config directory for the given app name.
func OpenHistory(appName string) (*History, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	return OpenHistoryFile(filepath.Join(dir, historyFileName))
}

// OpenHistoryFile opens a history database at an explicit path.
func OpenHistoryFile(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	history := &History{db: db}
	if err := history.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return history, nil
}

// Close releases the database handle.
func (history *History) Close() error {
	if history == nil || history.db == nil {
		return nil
	}
	return history.db.Close()
}

// Append records one completed window.
func (history *History) Append(entry HistoryEntry) (int64, error) {
	if history == nil || history.db == nil {
		return -1, fmt.Errorf("append result: history is closed")
	}
	if entry.Kind == "" {
		return -1, fmt.Errorf("append result: kind is empty")
	}
	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	sqlString := `INSERT INTO results (kind, click_count, allow_seconds, prohibit_seconds, recorded_at)
	             VALUES (?, ?, ?, ?, ?)`
	result, err := history.db.Exec(sqlString,
		string(entry.Kind), entry.ClickCount, entry.AllowSeconds, entry.ProhibitSeconds,
		recordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return -1, fmt.Errorf("append result: insert: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("append result: last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (history *History) Recent(limit int) ([]HistoryEntry, error) {
	if history == nil || history.db == nil {
		return nil, fmt.Errorf("recent results: history is closed")
	}
	if limit <= 0 {
		limit = 20
	}

	sqlString := `SELECT id, kind, click_count, allow_seconds, prohibit_seconds, recorded_at
	             FROM results ORDER BY id DESC LIMIT ?`
	rows, err := history.db.Query(sqlString, limit)
	if err != nil {
		return nil, fmt.Errorf("recent results: query: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var kind, recordedAt string
		if err := rows.Scan(&entry.ID, &kind, &entry.ClickCount,
			&entry.AllowSeconds, &entry.ProhibitSeconds, &recordedAt); err != nil {
			return nil, fmt.Errorf("recent results: scan: %w", err)
		}
		entry.Kind = cycle.ResultKind(kind)
		parsed, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("recent results: parse time: %w", err)
		}
		entry.RecordedAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent results: rows: %w", err)
	}
	return entries, nil
}

func (history *History) migrate() error {
	_, err := history.db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			click_count INTEGER NOT NULL DEFAULT 0,
			allow_seconds INTEGER NOT NULL,
			prohibit_seconds INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate history: create results table: %w", err)
	}
	return nil
}
