package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// Collection implements the use cases shared by every portfolio collection:
// validated create, partial-merge update, idempotent delete, ordered list.
// T is the record value type; P is its pointer, which carries the Record
// methods.
type Collection[T any, P model.RecordOf[T]] struct {
	repo repository.Collection[T]
}

// NewCollection constructs a collection service over the given repository.
func NewCollection[T any, P model.RecordOf[T]](repo repository.Collection[T]) *Collection[T, P] {
	return &Collection[T, P]{repo: repo}
}

// List returns every record in display order.
func (s *Collection[T, P]) List(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx)
}

// Create validates the payload against the record's required-field set and
// stores a new record under a freshly assigned identifier. Nothing is
// persisted on validation failure.
func (s *Collection[T, P]) Create(ctx context.Context, payload []byte) (*T, error) {
	rec := new(T)
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	p := P(rec)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	p.SetRecordID(uuid.NewString())
	return s.repo.Insert(ctx, p.RecordID(), rec)
}

// Update merges only the keys present in payload into the stored record and
// persists the result. Keys absent from the payload are untouched; the
// identifier is immutable regardless of what the payload claims.
func (s *Collection[T, P]) Update(ctx context.Context, id string, payload []byte) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Unmarshalling into the existing record overwrites exactly the supplied
	// keys, which is the partial-merge contract.
	if err := json.Unmarshal(payload, cur); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	p := P(cur)
	p.SetRecordID(id)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return s.repo.Save(ctx, id, cur)
}

// Delete removes a record by id. Deleting an absent record is a successful
// no-op; the caller cannot tell the two outcomes apart.
func (s *Collection[T, P]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
