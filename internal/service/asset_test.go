package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	repoMocks "portfolioapi/internal/repository/mocks"
	"portfolioapi/internal/storage"
	storeMocks "portfolioapi/internal/storage/mocks"
)

func TestAssetService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockAssetRepository) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "logo.png",
			contentType:      "image/png",
			size:             11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockAssetRepository) io.Reader {
				r := strings.NewReader("image bytes")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "assets/") && strings.HasSuffix(key, ".png")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "logo.png"},
				}).Return(storage.ObjectInfo{
					Key:         "assets/uuid.png",
					Size:        11,
					ContentType: "image/png",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Asset) bool {
					return a.Filename != "" && a.StoragePath == "assets/uuid.png"
				})).Return(&model.Asset{ID: "gen-id"}, nil)

				return r
			},
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "logo.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockAssetRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "storage error",
			originalFilename: "logo.png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockAssetRepository) io.Reader {
				r := strings.NewReader("bytes")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "repository error with successful rollback",
			originalFilename: "logo.png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockAssetRepository) io.Reader {
				r := strings.NewReader("bytes")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockAssetRepository)
			svc := NewAssetService(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)

			a, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, a)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestAssetService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockAssetRepository)
		svc := NewAssetService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "a1").Return(&model.Asset{ID: "a1", StoragePath: "assets/x.png"}, nil)
		mStore.On("Delete", ctx, "assets/x.png").Return(nil)
		mRepo.On("Delete", ctx, "a1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "a1"))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockAssetRepository)
		svc := NewAssetService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	})

	t.Run("storage delete failure keeps the row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockAssetRepository)
		svc := NewAssetService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "a1").Return(&model.Asset{ID: "a1", StoragePath: "p"}, nil)
		mStore.On("Delete", ctx, "p").Return(errors.New("storage fail"))

		err := svc.Delete(ctx, "a1")
		assert.Error(t, err)
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAssetService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAssetRepository)
	svc := NewAssetService(nil, mRepo)

	mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Asset]{
			Items: []model.Asset{{ID: "a1"}},
			Total: 1,
		}, nil)

	// Zero limit and negative offset fall back to defaults.
	res, err := svc.List(ctx, 0, -1)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Total)
	mRepo.AssertExpectations(t)
}
