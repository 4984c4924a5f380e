package postgres

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/providers/store"
)

// Store keeps entries as rows of a PostgreSQL table.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

// NewStore creates the connection pool for connString.
func NewStore(ctx context.Context, connString, table string) (*Store, error) {
	if table == "" || strings.ContainsAny(table, " ;\"'") {
		return nil, fmt.Errorf("%w: invalid table name '%s'", data.ErrInvalidArgument, table)
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	// Disable prepared statement caching to avoid collisions in pooled connections
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &Store{
		pool:  pool,
		table: table,
	}, nil
}

// Name returns the identifier name defined for this store
func (*Store) Name() string {
	return "postgres"
}

func (s *Store) Open(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			parent TEXT NOT NULL,
			type INTEGER NOT NULL,
			create_time BIGINT NOT NULL,
			modify_time BIGINT NOT NULL,
			content BYTEA
		)`, s.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_parent ON %[1]s(parent)`, s.table),
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func (s *Store) Stat(ctx context.Context, key string) (*store.Entry, error) {
	var (
		entry              = &store.Entry{Key: key}
		typ                int
		createdAt, updated int64
	)

	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT id, type, create_time, modify_time FROM %s WHERE key = $1`, s.table), key)
	if err := row.Scan(&entry.ID, &typ, &createdAt, &updated); err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
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
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, key, parent, type, create_time, modify_time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.table), entry.ID, entry.Key, store.ParentKey(entry.Key), int(entry.Type),
		entry.CreateTime.Unix(), entry.ModifyTime.Unix())

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, s.table), key)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return data.ErrNotExist
	}
	return nil
}

func (s *Store) List(ctx context.Context, key string) ([]string, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`SELECT key FROM %s WHERE parent = $1 ORDER BY key`, s.table), key)
	if err != nil {
		return nil, err
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	prefix := store.ChildPrefix(key)
	children := make([]string, 0, len(keys))
	for _, child := range keys {
		children = append(children, strings.TrimPrefix(child, prefix))
	}

	return children, nil
}

func (s *Store) ReadContent(ctx context.Context, key string) ([]byte, error) {
	var content []byte

	row := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT content FROM %s WHERE key = $1`, s.table), key)
	if err := row.Scan(&content); err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, data.ErrNotExist
		}
		return nil, err
	}
	return content, nil
}
