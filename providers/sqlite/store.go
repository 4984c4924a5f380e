package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/providers/store"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store keeps entries as rows of a single table. Rows carry the key of
// their parent so that listing a folder is an indexed lookup.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	table string
}

// NewStore opens the database at path without touching the schema.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Table == "" || strings.ContainsAny(cfg.Table, " ;\"'") {
		return nil, fmt.Errorf("%w: invalid table name '%s'", data.ErrInvalidArgument, cfg.Table)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" opens a separate database.
	db.SetMaxOpenConns(1)

	return &Store{
		db:    db,
		table: cfg.Table,
	}, nil
}

// Returns the identifier name defined for this store.
func (*Store) Name() string {
	return "sqlite"
}

func (s *Store) Open(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		parent TEXT NOT NULL,
		type INTEGER NOT NULL,
		create_time INTEGER NOT NULL,
		modify_time INTEGER NOT NULL,
		content BLOB
	);
	CREATE INDEX IF NOT EXISTS idx_%[1]s_parent ON %[1]s(parent);
	`, s.table))
	return err
}

func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

func (s *Store) Stat(ctx context.Context, key string) (*store.Entry, error) {
	var (
		entry              = &store.Entry{Key: key}
		typ                int
		createdAt, updated int64
	)

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT id, type, create_time, modify_time FROM %s WHERE key = ?`, s.table), key)
	if err := row.Scan(&entry.ID, &typ, &createdAt, &updated); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}

	entry.Type = data.FileType(typ)
	entry.CreateTime = time.Unix(createdAt, 0)
	entry.ModifyTime = time.Unix(updated, 0)
	return entry, nil
}

func (s *Store) Create(ctx context.Context, entry *store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Stat(ctx, entry.Key); err == nil {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, key, parent, type, create_time, modify_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.table), entry.ID, entry.Key, store.ParentKey(entry.Key), int(entry.Type),
		entry.CreateTime.Unix(), entry.ModifyTime.Unix())
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, s.table), key)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotExist
	}
	return nil
}

func (s *Store) List(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT key FROM %s WHERE parent = ? ORDER BY key`, s.table), key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefix := store.ChildPrefix(key)
	children := make([]string, 0)
	for rows.Next() {
		var child string
		if err := rows.Scan(&child); err != nil {
			return nil, err
		}
		children = append(children, strings.TrimPrefix(child, prefix))
	}

	return children, rows.Err()
}

// WriteContent stores content for an existing file entry.
func (s *Store) WriteContent(ctx context.Context, key string, content []byte) error {
	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET content = ?, modify_time = ? WHERE key = ? AND type = ?`, s.table),
		content, time.Now().Unix(), key, int(data.FileTypeFile))
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotExist
	}
	return nil
}

func (s *Store) ReadContent(ctx context.Context, key string) ([]byte, error) {
	var content []byte

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT content FROM %s WHERE key = ?`, s.table), key)
	if err := row.Scan(&content); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}
	return content, nil
}
