package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// Collection defines data access for one portfolio collection. Records are
// stored as whole JSON documents; no business logic here, strictly
// persistence operations.
type Collection[T any] interface {
	// Insert stores a new record under the given id. The id must be unique
	// within the collection.
	Insert(ctx context.Context, id string, rec *T) (*T, error)

	// FindByID returns a record by its id, or sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// List returns every record, ordered by the collection's display order.
	List(ctx context.Context) ([]*T, error)

	// Save replaces the stored document for id with rec. Returns
	// sql.ErrNoRows if the record does not exist.
	Save(ctx context.Context, id string, rec *T) (*T, error)

	// Delete removes a record by id. It returns nil if the row was deleted or
	// did not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll empties the collection. Used only by the seed flow.
	DeleteAll(ctx context.Context) error
}

// HistoryRepository extends the generic collection with the timeline queries
// that depend on the type discriminator.
type HistoryRepository interface {
	Collection[model.History]

	// ListItems returns history records excluding the section record, sorted
	// descending by date.
	ListItems(ctx context.Context) ([]*model.History, error)

	// FindSection returns the section record, or sql.ErrNoRows if none
	// exists. When more than one section row exists the earliest inserted
	// wins.
	FindSection(ctx context.Context) (*model.History, error)
}

// AssetRepository defines data access for uploaded media asset metadata.
type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) (*model.Asset, error)
	FindByID(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Asset], error)
	// Delete removes an asset row by id. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
