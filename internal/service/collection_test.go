package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/model"
	repoMocks "portfolioapi/internal/repository/mocks"
)

func newProjectService(repo *repoMocks.MockCollection[model.Project]) *Collection[model.Project, *model.Project] {
	return NewCollection[model.Project, *model.Project](repo)
}

func TestCollection_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		payload    string
		setupMocks func(repo *repoMocks.MockCollection[model.Project])
		wantErr    error
		check      func(t *testing.T, rec *model.Project)
	}{
		{
			name:    "happy path assigns fresh id",
			payload: `{"title":"X","description":"d","video":"v.mp4","date":"2024-01-01"}`,
			setupMocks: func(repo *repoMocks.MockCollection[model.Project]) {
				repo.On("Insert", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(p *model.Project) bool {
					return p.Title == "X" && p.ID != ""
				})).Return(&model.Project{ID: "gen-id", Title: "X"}, nil)
			},
			check: func(t *testing.T, rec *model.Project) {
				assert.Equal(t, "gen-id", rec.ID)
			},
		},
		{
			name:    "client-supplied id is ignored",
			payload: `{"id":"attacker","title":"X","description":"d","video":"v.mp4","date":"2024"}`,
			setupMocks: func(repo *repoMocks.MockCollection[model.Project]) {
				repo.On("Insert", ctx, mock.MatchedBy(func(id string) bool {
					return id != "attacker"
				}), mock.Anything).Return(&model.Project{ID: "gen-id"}, nil)
			},
		},
		{
			name:       "missing required fields",
			payload:    `{"title":"X"}`,
			setupMocks: func(repo *repoMocks.MockCollection[model.Project]) {},
			wantErr:    ErrInvalidPayload,
		},
		{
			name:       "malformed json",
			payload:    `{"title":`,
			setupMocks: func(repo *repoMocks.MockCollection[model.Project]) {},
			wantErr:    ErrInvalidPayload,
		},
		{
			name:    "repository error",
			payload: `{"title":"X","description":"d","video":"v.mp4","date":"2024"}`,
			setupMocks: func(repo *repoMocks.MockCollection[model.Project]) {
				repo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockCollection[model.Project])
			svc := newProjectService(repo)
			tt.setupMocks(repo)

			rec, err := svc.Create(ctx, []byte(tt.payload))

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrInvalidPayload) {
					assert.ErrorIs(t, err, ErrInvalidPayload)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, rec)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, rec)
				}
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCollection_UpdateMergesOnlySuppliedKeys(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	stored := &model.Project{
		ID: "p1", Title: "X", Description: "d", Video: "v.mp4",
		Date: "2024-01-01", LiveURL: "https://x.dev",
	}
	repo.On("FindByID", ctx, "p1").Return(stored, nil)
	repo.On("Save", ctx, "p1", mock.MatchedBy(func(p *model.Project) bool {
		// Only badges changed; every other field keeps its pre-update value.
		return p.ID == "p1" && p.Title == "X" && p.Description == "d" &&
			p.Video == "v.mp4" && p.Date == "2024-01-01" && p.LiveURL == "https://x.dev" &&
			len(p.Badges) == 2 && p.Badges[0] == "A" && p.Badges[1] == "B"
	})).Return(stored, nil)

	_, err := svc.Update(ctx, "p1", []byte(`{"badges":["A","B"]}`))

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCollection_UpdateIDImmutable(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	stored := &model.Project{ID: "p1", Title: "X", Description: "d", Video: "v", Date: "2024"}
	repo.On("FindByID", ctx, "p1").Return(stored, nil)
	repo.On("Save", ctx, "p1", mock.MatchedBy(func(p *model.Project) bool {
		return p.ID == "p1"
	})).Return(stored, nil)

	_, err := svc.Update(ctx, "p1", []byte(`{"id":"other","title":"Y"}`))

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCollection_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	repo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

	_, err := svc.Update(ctx, "missing", []byte(`{"title":"Y"}`))

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestCollection_UpdateBlankedRequiredFieldRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	stored := &model.Project{ID: "p1", Title: "X", Description: "d", Video: "v", Date: "2024"}
	repo.On("FindByID", ctx, "p1").Return(stored, nil)

	_, err := svc.Update(ctx, "p1", []byte(`{"title":""}`))

	assert.ErrorIs(t, err, ErrInvalidPayload)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollection_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	// The repository reports success whether or not the row existed; both
	// calls succeed.
	repo.On("Delete", ctx, "p1").Return(nil).Twice()

	require.NoError(t, svc.Delete(ctx, "p1"))
	require.NoError(t, svc.Delete(ctx, "p1"))
	repo.AssertExpectations(t)
}

func TestCollection_DeleteEmptyID(t *testing.T) {
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrIDRequired)
}

func TestCollection_List(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.Project])
	svc := newProjectService(repo)

	repo.On("List", ctx).Return([]*model.Project{{ID: "p1"}, {ID: "p2"}}, nil)

	items, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}
