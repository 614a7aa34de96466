package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/courier-hub/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const documentsTable = "documents"

// PostgresStore keeps every collection in one JSONB table keyed by (collection, id).
type PostgresStore struct {
	db        *sqlx.DB
	qb        sq.StatementBuilderType
	txManager trm.Manager
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sqlx.DB, txManager trm.Manager) *PostgresStore {
	return &PostgresStore{
		db:        db,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

func (s *PostgresStore) Insert(ctx context.Context, collection, id string, doc []byte) error {
	query, args := s.qb.Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, string(doc)).
		Suffix("ON CONFLICT (collection, id) DO NOTHING").
		MustSql()

	res, err := s.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDuplicate
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	query, args := s.qb.Select("data").
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		MustSql()

	var data string
	err := s.getContext(ctx, &data, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return []byte(data), nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter) ([][]byte, error) {
	q := s.qb.Select("data").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("created_at ASC", "id ASC")

	if len(filter) > 0 {
		// для скалярных значений @> эквивалентно равенству полей
		raw, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
		q = q.Where(sq.Expr("data @> ?::jsonb", string(raw)))
	}

	query, args := q.MustSql()

	var rows []string
	if err := s.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	out := make([][]byte, 0, len(rows))
	for _, row := range rows {
		out = append(out, []byte(row))
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, fn Mutator) ([]byte, error) {
	var updated []byte
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		query, args := s.qb.Select("data").
			From(documentsTable).
			Where(sq.Eq{"collection": collection, "id": id}).
			Suffix("FOR UPDATE").
			MustSql()

		var current string
		err := s.getContext(ctx, &current, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock document: %w", err)
		}

		next, err := fn([]byte(current))
		if err != nil {
			return err
		}

		query, args = s.qb.Update(documentsTable).
			Set("data", string(next)).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"collection": collection, "id": id}).
			MustSql()

		if _, err := s.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	query, args := s.qb.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		MustSql()

	res, err := s.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.QuerierFrom(ctx, s.db).ExecContext(ctx, query, args...)
}

func (s *PostgresStore) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, trm.QuerierFrom(ctx, s.db), dest, query, args...)
}

func (s *PostgresStore) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, trm.QuerierFrom(ctx, s.db), dest, query, args...)
}
