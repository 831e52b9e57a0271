package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle and exposes the Repository API plus
// transactional read-modify-write helpers.
type Store struct {
	*SQLiteRepository
	db *sql.DB
}

// RunMigrations applies the embedded migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite file at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers anyway; one connection also keeps
	// ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{SQLiteRepository: NewSQLiteRepository(db), db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn with the current value of key (nil when absent) inside a
// transaction and stores whatever fn returns. Returning a nil slice deletes
// the key.
func (s *Store) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)

		old, err := repo.Get(ctx, key)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		next, err := fn(old)
		if err != nil {
			return err
		}
		if next == nil {
			return repo.Delete(ctx, key)
		}
		return repo.Set(ctx, key, next)
	})
}

// GetJSON decodes the value stored under key into v. It returns
// common.ErrorNotFound when the key is absent.
func GetJSON(ctx context.Context, r Repository, key string, v any) error {
	b, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode kv[%s]: %w", key, err)
	}
	return nil
}

// UpdateJSON is Update for JSON-encoded values. fn receives the decoded
// current value (the zero value when absent).
func UpdateJSON[T any](ctx context.Context, s *Store, key string, fn func(cur T) (T, error)) error {
	return s.Update(ctx, key, func(old []byte) ([]byte, error) {
		var cur T
		if old != nil {
			if err := json.Unmarshal(old, &cur); err != nil {
				return nil, fmt.Errorf("decode kv[%s]: %w", key, err)
			}
		}
		next, err := fn(cur)
		if err != nil {
			return nil, err
		}
		return json.Marshal(next)
	})
}
