// Package store owns the persistent landholders schema: the typed table
// keyed by pase_name, the full-text index over the human-readable columns,
// and the transactional bulk load that fills them.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/benwebber/domesday/pkg/record"

	_ "modernc.org/sqlite"
)

const driverSqlite = "sqlite"

// Config configures a Store.
type Config struct {
	// Path is the SQLite database file. ":memory:" is accepted.
	Path string

	// StrictTypes aborts a load when a decimal field fails coercion
	// instead of carrying the raw text (see record.Options).
	StrictTypes bool

	// Logger receives load progress and pragma warnings. nil means no
	// logging.
	Logger *zerolog.Logger
}

// Store is a handle on the landholders database. The schema is ensured on
// Open, so a Store is always ready once constructed. Single writer only;
// concurrent loads against the same file are not supported.
type Store struct {
	db   *sql.DB
	log  zerolog.Logger
	opts record.Options
}

// schema is idempotent: safe to run on every startup regardless of prior
// state. TEXT_DECIMAL matches TEXT affinity, so SQLite keeps leading and
// trailing zeros of the decimal columns intact.
const schema = `
CREATE TABLE IF NOT EXISTS landholders (
    name              TEXT,
    gender            TEXT,
    pase_name         TEXT NOT NULL PRIMARY KEY,
    description       TEXT NOT NULL,
    holder_1066       TEXT_DECIMAL NOT NULL,
    lord_1066         TEXT_DECIMAL NOT NULL,
    demesne_1086      TEXT_DECIMAL NOT NULL,
    subtenanted_1086  TEXT_DECIMAL NOT NULL,
    subtenant_1086    TEXT_DECIMAL NOT NULL,
    editor            TEXT,
    editorial_status  TEXT NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS landholders_fts USING fts5(
    name, pase_name, description,
    content='landholders'
);

CREATE INDEX IF NOT EXISTS idx_landholders_gender ON landholders(gender);
`

// Open opens (creating if necessary) the database at cfg.Path, applies the
// connection pragmas, and ensures the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := sql.Open(driverSqlite, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	s := &Store{
		db:   db,
		log:  logger,
		opts: record.Options{StrictTypes: cfg.StrictTypes},
	}

	s.applyPragmas(ctx)

	if err := s.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// applyPragmas tunes the connection for bulk import. Individual pragma
// failures are warnings, not errors: some (page_size on an existing file)
// legitimately no-op.
func (s *Store) applyPragmas(ctx context.Context) {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			s.log.Warn().Err(err).Str("pragma", pragma).Msg("pragma failed")
		}
	}
}

// CreateSchema idempotently ensures the landholders table, its search
// index, and the gender index exist. Called by Open; safe to call again.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB exposes the underlying handle for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Count returns the number of stored landholders.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM landholders").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count landholders: %w", err)
	}
	return n, nil
}
