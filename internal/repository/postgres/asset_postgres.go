package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// AssetPostgres is a PostgreSQL implementation of repository.AssetRepository.
// Asset metadata is relational (typed columns), unlike the document
// collections, because it never receives partial merges.
type AssetPostgres struct {
	db *sql.DB
}

// NewAssetPostgres creates a new AssetPostgres repository.
func NewAssetPostgres(db *sql.DB) *AssetPostgres {
	return &AssetPostgres{db: db}
}

var _ repository.AssetRepository = (*AssetPostgres)(nil)

// Create inserts a new asset row and returns the stored record.
func (r *AssetPostgres) Create(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	const q = `
		INSERT INTO assets (id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, storage_path, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Filename,
		a.StoragePath,
		a.Size,
		a.ContentType,
		a.CreatedAt,
	)
	var out model.Asset
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single asset by its id.
func (r *AssetPostgres) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	const q = `
		SELECT id, filename, storage_path, size, content_type, created_at
		FROM assets
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var a model.Asset
	if err := row.Scan(
		&a.ID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns assets using LIMIT/OFFSET pagination and a total count.
func (r *AssetPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Asset], error) {
	const qCount = `SELECT COUNT(*) FROM assets`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, filename, storage_path, size, content_type, created_at
		FROM assets
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Asset, 0)
	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(
			&a.ID,
			&a.Filename,
			&a.StoragePath,
			&a.Size,
			&a.ContentType,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Asset]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes an asset by id. It does not return an error if the row does
// not exist.
func (r *AssetPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM assets WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
