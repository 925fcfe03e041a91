package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolioapi/internal/auth"
	"portfolioapi/internal/model"
	repoMocks "portfolioapi/internal/repository/mocks"
	"portfolioapi/internal/service"
	serviceMocks "portfolioapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/api/admin/login", Login(mockSvc))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Login", "admin", "secret").Return("signed-token", nil).Once()

		resp := post(`{"username":"admin","password":"secret"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body loginResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "signed-token", body.Token)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc.On("Login", "admin", "wrong").Return("", service.ErrInvalidCredentials).Once()

		resp := post(`{"username":"admin","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed payload", func(t *testing.T) {
		// Earlier subtests share this mock; drop their recorded calls so
		// AssertNotCalled only sees this request.
		mockSvc.Calls = nil

		resp := post(`{"username":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

// newProjectApp wires the generic collection handlers over a mocked
// repository, the same composition the real routes use.
func newProjectApp() (*fiber.App, *repoMocks.MockCollection[model.Project]) {
	repo := new(repoMocks.MockCollection[model.Project])
	svc := service.NewCollection[model.Project, *model.Project](repo)

	app := fiber.New()
	app.Get("/api/projects", ListRecords(svc))
	app.Post("/api/admin/projects", CreateRecord(svc))
	app.Put("/api/admin/projects/:id", UpdateRecord(svc))
	app.Delete("/api/admin/projects/:id", DeleteRecord(svc, "Project"))
	return app, repo
}

func TestListRecords(t *testing.T) {
	app, repo := newProjectApp()

	t.Run("success", func(t *testing.T) {
		repo.On("List", mock.Anything).Return([]*model.Project{
			{ID: "p1", Title: "One"},
			{ID: "p2", Title: "Two"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.Project
		json.NewDecoder(resp.Body).Decode(&items)
		require.Len(t, items, 2)
		assert.Equal(t, "p1", items[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		repo.On("List", mock.Anything).Return(nil, errors.New("store down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		repo.AssertExpectations(t)
	})
}

func TestCreateRecord(t *testing.T) {
	app, repo := newProjectApp()

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		repo.On("Insert", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(&model.Project{ID: "new-id", Title: "Site", Description: "d", Video: "v", Date: "2024"}, nil).Once()

		resp := post(`{"title":"Site","description":"d","video":"v","date":"2024"}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got model.Project
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "new-id", got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		// Earlier subtests share this mock; drop their recorded calls so
		// AssertNotCalled only sees this request.
		repo.Calls = nil

		resp := post(`{"title":"Site"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_PAYLOAD", body.Error.Code)
		assert.Contains(t, body.Error.Message, "missing required fields")
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateRecord(t *testing.T) {
	app, repo := newProjectApp()

	t.Run("merges supplied keys", func(t *testing.T) {
		stored := &model.Project{ID: "p1", Title: "Old", Description: "d", Video: "v", Date: "2024"}
		repo.On("FindByID", mock.Anything, "p1").Return(stored, nil).Once()
		repo.On("Save", mock.Anything, "p1", mock.Anything).
			Return(&model.Project{ID: "p1", Title: "New", Description: "d", Video: "v", Date: "2024"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/p1", strings.NewReader(`{"title":"New"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.Project
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "d", got.Description)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/ghost", strings.NewReader(`{"title":"New"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		repo.AssertExpectations(t)
	})
}

func TestDeleteRecord(t *testing.T) {
	app, repo := newProjectApp()

	t.Run("reports success even for absent ids", func(t *testing.T) {
		repo.On("Delete", mock.Anything, "whatever").Return(nil).Twice()

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/whatever", nil)
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var body map[string]string
			json.NewDecoder(resp.Body).Decode(&body)
			assert.Equal(t, "Project deleted", body["message"])
		}
		repo.AssertExpectations(t)
	})
}

func TestHistoryHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockHistoryService)
	app := fiber.New()
	app.Get("/api/history", ListHistory(mockSvc))
	app.Get("/api/history-section", GetHistorySection(mockSvc))
	app.Put("/api/admin/history-section", UpsertHistorySection(mockSvc))

	t.Run("list returns timeline items", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]*model.History{
			{ID: "h1", Type: model.HistoryTypeItem, Title: "Hackathon"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.History
		json.NewDecoder(resp.Body).Decode(&items)
		require.Len(t, items, 1)
		assert.Equal(t, "Hackathon", items[0].Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("section description", func(t *testing.T) {
		mockSvc.On("SectionDescription", mock.Anything).Return("things I built", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/history-section", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "things I built", body["description"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("upsert section", func(t *testing.T) {
		mockSvc.On("UpsertSection", mock.Anything, "updated text").
			Return(&model.History{ID: model.SectionID, Type: model.HistoryTypeSection, SectionDescription: "updated text"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/history-section", strings.NewReader(`{"description":"updated text"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.History
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, model.SectionID, got.ID)
		mockSvc.AssertExpectations(t)
	})
}

// TestAdminGate exercises the full route table: a write without a token is
// rejected before it can touch the store, and the same write with a fresh
// token goes through.
func TestAdminGate(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tokens := auth.NewTokens("test-secret", time.Hour)

	projectRepo := new(repoMocks.MockCollection[model.Project])
	historyRepo := new(repoMocks.MockHistoryRepository)
	authSvc := new(serviceMocks.MockAuthService)
	assetSvc := new(serviceMocks.MockAssetService)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, tokens, Services{
		Experiences: service.NewCollection[model.Experience, *model.Experience](new(repoMocks.MockCollection[model.Experience])),
		Education:   service.NewCollection[model.Education, *model.Education](new(repoMocks.MockCollection[model.Education])),
		Skills:      service.NewCollection[model.Skill, *model.Skill](new(repoMocks.MockCollection[model.Skill])),
		Projects:    service.NewCollection[model.Project, *model.Project](projectRepo),
		History:     service.NewHistoryService(historyRepo),
		Assets:      assetSvc,
		Auth:        authSvc,
	})

	body := `{"title":"Site","description":"d","video":"v","date":"2024"}`

	t.Run("no token is rejected and store untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "MISSING_TOKEN", payload.Error.Code)
		projectRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/p1", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		projectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := tokens.Issue("admin")
		require.NoError(t, err)

		projectRepo.On("Insert", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(&model.Project{ID: "p1", Title: "Site"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		projectRepo.AssertExpectations(t)
	})

	t.Run("login stays reachable without a token", func(t *testing.T) {
		authSvc.On("Login", "admin", "pw").Return("tkn", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		authSvc.AssertExpectations(t)
	})
}

func TestListAssets(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssetService)
	app := fiber.New()
	app.Get("/api/assets", ListAssets(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(&service.AssetListResult{
			Items: []model.Asset{{ID: "a1", Filename: "logo.png"}},
			Total: 1,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.AssetListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/assets?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	})
}
