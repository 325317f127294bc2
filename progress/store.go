package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Key is the storage key of the highest unlocked level.
const Key = "forestSurvivorProgress"

// DefaultUnlocked is the count when nothing has been saved yet.
const DefaultUnlocked = 1

// Store persists the highest unlocked level (1-based).
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, unlocked int) error
	Close() error
}

// DefaultPath is the progress database under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "forestsurvivor", "progress.db")
}

// SQLiteStore keeps progress in a one-table key/value SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("progress: create directory %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("progress: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: ping %s: %w", path, err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (int, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, Key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultUnlocked, nil
	}
	if err != nil {
		return DefaultUnlocked, fmt.Errorf("progress: load: %w", err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < DefaultUnlocked {
		return DefaultUnlocked, fmt.Errorf("progress: bad stored value %q", raw)
	}
	return n, nil
}

func (s *SQLiteStore) Save(ctx context.Context, unlocked int) error {
	const query = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, Key, strconv.Itoa(unlocked)); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is used when no database can be opened.
type MemoryStore struct {
	mu    sync.Mutex
	value int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{value: DefaultUnlocked}
}

func (m *MemoryStore) Load(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryStore) Save(_ context.Context, unlocked int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = unlocked
	return nil
}

func (m *MemoryStore) Close() error { return nil }
