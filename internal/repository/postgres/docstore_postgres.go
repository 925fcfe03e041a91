package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// DocStore is a PostgreSQL implementation of repository.Collection. Each row
// holds the full record as a JSONB document; pos (a sequence) preserves
// insertion order. Sorting by a date-like document key is a plain string
// comparison, matching the free-form date values the records carry.
type DocStore[T any] struct {
	db      *sql.DB
	table   string
	sortKey string
}

// NewDocStore creates a DocStore over the given table. sortKey names the
// document key used for descending display order; when empty, listings use
// insertion order. Both values come from compile-time constants, never from
// request input, so interpolating them into SQL is safe.
func NewDocStore[T any](db *sql.DB, table, sortKey string) *DocStore[T] {
	return &DocStore[T]{db: db, table: table, sortKey: sortKey}
}

// Insert stores a new document row and returns the stored record.
func (s *DocStore[T]) Insert(ctx context.Context, id string, rec *T) (*T, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	q := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2) RETURNING doc`, s.table)
	var raw []byte
	if err := s.db.QueryRowContext(ctx, q, id, doc).Scan(&raw); err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// FindByID fetches a single record by its id.
func (s *DocStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	q := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table)
	var raw []byte
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&raw); err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// List returns all records in display order.
func (s *DocStore[T]) List(ctx context.Context) ([]*T, error) {
	order := "pos ASC"
	if s.sortKey != "" {
		order = fmt.Sprintf("doc->>'%s' DESC NULLS LAST, pos ASC", s.sortKey)
	}
	q := fmt.Sprintf(`SELECT doc FROM %s ORDER BY %s`, s.table, order)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		rec, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the stored document for id. Missing rows surface as
// sql.ErrNoRows so callers can report not-found.
func (s *DocStore[T]) Save(ctx context.Context, id string, rec *T) (*T, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	q := fmt.Sprintf(`UPDATE %s SET doc = $2 WHERE id = $1 RETURNING doc`, s.table)
	var raw []byte
	if err := s.db.QueryRowContext(ctx, q, id, doc).Scan(&raw); err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Delete removes a record by id. It does not return an error if the row does
// not exist; deletion is idempotent at this layer by contract.
func (s *DocStore[T]) Delete(ctx context.Context, id string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table)
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// DeleteAll empties the collection.
func (s *DocStore[T]) DeleteAll(ctx context.Context) error {
	q := fmt.Sprintf(`DELETE FROM %s`, s.table)
	_, err := s.db.ExecContext(ctx, q)
	return err
}

func decode[T any](raw []byte) (*T, error) {
	rec := new(T)
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}
