package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// HistoryPostgres extends the history DocStore with the discriminator-aware
// timeline queries.
type HistoryPostgres struct {
	*DocStore[model.History]
}

// NewHistoryPostgres creates the history repository.
func NewHistoryPostgres(db *sql.DB) *HistoryPostgres {
	return &HistoryPostgres{DocStore: NewDocStore[model.History](db, "history", "date")}
}

var _ repository.HistoryRepository = (*HistoryPostgres)(nil)

// ListItems returns timeline entries, excluding the section record. Rows
// without a type count as items, matching the item default.
func (r *HistoryPostgres) ListItems(ctx context.Context) ([]*model.History, error) {
	const q = `
		SELECT doc FROM history
		WHERE doc->>'type' IS DISTINCT FROM 'section'
		ORDER BY doc->>'date' DESC NULLS LAST, pos ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.History, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		rec, err := decode[model.History](raw)
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

// FindSection returns the section record. Should more than one exist, the
// earliest inserted row wins; the tie-break is deliberate and fixed.
func (r *HistoryPostgres) FindSection(ctx context.Context) (*model.History, error) {
	const q = `
		SELECT doc FROM history
		WHERE doc->>'type' = 'section'
		ORDER BY pos ASC
		LIMIT 1
	`
	var raw []byte
	if err := r.db.QueryRowContext(ctx, q).Scan(&raw); err != nil {
		return nil, err
	}
	return decode[model.History](raw)
}
