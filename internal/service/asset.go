package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// AssetListResult is the service-level DTO for paginated assets.
type AssetListResult struct {
	Items []model.Asset `json:"data"`
	Total int           `json:"total"`
}

// AssetService manages uploaded portfolio media: logos and project videos.
// Files live in object storage; the database holds only their metadata.
type AssetService interface {
	// Upload streams the content to object storage, saves metadata to DB, and
	// rolls back the stored object if the DB save fails. originalFilename is
	// used only to extract the extension.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Asset, error)

	// List returns assets using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*AssetListResult, error)

	// DownloadURL returns a time-limited URL for the asset's content.
	DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes an asset from both storage and the repository.
	Delete(ctx context.Context, id string) error
}

type assetService struct {
	store storage.Storage
	repo  repository.AssetRepository
}

// NewAssetService constructs a new AssetService.
func NewAssetService(store storage.Storage, repo repository.AssetRepository) AssetService {
	return &assetService{store: store, repo: repo}
}

func (s *assetService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Asset, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("assets", genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	a := &model.Asset{
		ID:          uuid.New().String(),
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *assetService) List(ctx context.Context, limit, offset int) (*AssetListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AssetListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *assetService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.store.PresignGet(ctx, a.StoragePath, expiry)
}

// Delete removes the object from storage, then deletes its metadata row.
func (s *assetService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// reference is not lost.
	if err := s.store.Delete(ctx, a.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
