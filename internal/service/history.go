package service

import (
	"context"
	"database/sql"
	"errors"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// HistoryService is the collection service for timeline records plus the
// section-singleton operations. The section record never appears in List.
type HistoryService interface {
	List(ctx context.Context) ([]*model.History, error)
	Create(ctx context.Context, payload []byte) (*model.History, error)
	Update(ctx context.Context, id string, payload []byte) (*model.History, error)
	Delete(ctx context.Context, id string) error

	// SectionDescription returns the singleton section's description, or the
	// empty string when no section record exists.
	SectionDescription(ctx context.Context) (string, error)

	// UpsertSection creates the section record under its fixed sentinel id,
	// or updates the existing one's description. Distinct from generic
	// create/update.
	UpsertSection(ctx context.Context, description string) (*model.History, error)
}

type historyService struct {
	*Collection[model.History, *model.History]
	repo repository.HistoryRepository
}

// NewHistoryService constructs the history service.
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{
		Collection: NewCollection[model.History, *model.History](repo),
		repo:       repo,
	}
}

// List returns timeline items only, shadowing the generic listing.
func (s *historyService) List(ctx context.Context) ([]*model.History, error) {
	return s.repo.ListItems(ctx)
}

func (s *historyService) SectionDescription(ctx context.Context) (string, error) {
	sec, err := s.repo.FindSection(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return sec.SectionDescription, nil
}

func (s *historyService) UpsertSection(ctx context.Context, description string) (*model.History, error) {
	sec, err := s.repo.FindSection(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			rec := &model.History{
				ID:                 model.SectionID,
				Type:               model.HistoryTypeSection,
				SectionDescription: description,
			}
			return s.repo.Insert(ctx, rec.ID, rec)
		}
		return nil, err
	}
	sec.SectionDescription = description
	return s.repo.Save(ctx, sec.ID, sec)
}
