package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/delivery/http/controllers"
	"agenda-care-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDataProvider struct {
	mock.Mock
}

func (m *MockDataProvider) GetList(ctx context.Context, resourceType string, params contracts.ListParams) (any, int, error) {
	args := m.Called(ctx, resourceType, params)
	return args.Get(0), args.Int(1), args.Error(2)
}

func (m *MockDataProvider) GetOne(ctx context.Context, resourceType, id string) (any, error) {
	args := m.Called(ctx, resourceType, id)
	return args.Get(0), args.Error(1)
}

func (m *MockDataProvider) GetMany(ctx context.Context, resourceType string, ids []string) (any, error) {
	args := m.Called(ctx, resourceType, ids)
	return args.Get(0), args.Error(1)
}

func (m *MockDataProvider) Create(ctx context.Context, resourceType string, payload map[string]any) (any, error) {
	args := m.Called(ctx, resourceType, payload)
	return args.Get(0), args.Error(1)
}

func (m *MockDataProvider) Update(ctx context.Context, resourceType, id string, payload map[string]any) (any, error) {
	args := m.Called(ctx, resourceType, id, payload)
	return args.Get(0), args.Error(1)
}

func (m *MockDataProvider) Delete(ctx context.Context, resourceType, id string) error {
	args := m.Called(ctx, resourceType, id)
	return args.Error(0)
}

func (m *MockDataProvider) DeleteMany(ctx context.Context, resourceType string, ids []string) ([]string, error) {
	args := m.Called(ctx, resourceType, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newResourceTestRouter(provider *MockDataProvider, authUsecase *MockAuthUsecase) chi.Router {
	logger := zap.NewNop()

	resourceController := controllers.NewResourceController(logger, provider)
	middlewareInstance := &middlewares.Middlewares{
		Log:         logger,
		AuthUsecase: authUsecase,
	}

	router := chi.NewRouter()
	attachResourceRoutes(router, middlewareInstance, resourceController)
	return router
}

func authenticatedUsecase() *MockAuthUsecase {
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("CheckAuthentication", mock.Anything, mock.Anything).Return(true, nil)
	return mockAuthUsecase
}

func TestResourceRouter_List(t *testing.T) {
	t.Run("Query Parameters Become Filters", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("GetList", mock.Anything, "Patient", contracts.ListParams{
			Filters: map[string]string{"name": "Maria"},
		}).Return([]any{}, 0, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		req := httptest.NewRequest("GET", "/Patient?name=Maria", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		provider.AssertExpectations(t)
	})

	t.Run("List Response Carries Total", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("GetList", mock.Anything, "Slot", mock.Anything).
			Return([]any{map[string]any{"id": "1"}}, 7, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		req := httptest.NewRequest("GET", "/Slot", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Total *int `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		if assert.NotNil(t, body.Total) {
			assert.Equal(t, 7, *body.Total)
		}
	})

	t.Run("Ids Parameter Routes to GetMany", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("GetMany", mock.Anything, "Patient", []string{"1", "2"}).
			Return([]any{}, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		req := httptest.NewRequest("GET", "/Patient?ids=1,2", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		provider.AssertNotCalled(t, "GetList")
		provider.AssertExpectations(t)
	})

	t.Run("Unauthenticated Request Is Rejected", func(t *testing.T) {
		provider := new(MockDataProvider)
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("CheckAuthentication", mock.Anything, mock.Anything).Return(false, nil)

		router := newResourceTestRouter(provider, mockAuthUsecase)

		req := httptest.NewRequest("GET", "/Patient", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		provider.AssertNotCalled(t, "GetList")
	})
}

func TestResourceRouter_Mutations(t *testing.T) {
	t.Run("Create Passes the Raw Payload", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("Create", mock.Anything, "Location", map[string]any{"name": "Sala 2"}).
			Return(map[string]any{"id": "loc-1"}, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		jsonBody, _ := json.Marshal(map[string]any{"name": "Sala 2"})
		req := httptest.NewRequest("POST", "/Location", bytes.NewBuffer(jsonBody))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		provider.AssertExpectations(t)
	})

	t.Run("Update Targets the URL Resource", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("Update", mock.Anything, "Schedule", "sch-9", map[string]any{"comment": "nova agenda"}).
			Return(map[string]any{"id": "sch-9"}, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		jsonBody, _ := json.Marshal(map[string]any{"comment": "nova agenda"})
		req := httptest.NewRequest("PUT", "/Schedule/sch-9", bytes.NewBuffer(jsonBody))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		provider.AssertExpectations(t)
	})

	t.Run("Delete Many Requires Ids", func(t *testing.T) {
		provider := new(MockDataProvider)
		router := newResourceTestRouter(provider, authenticatedUsecase())

		req := httptest.NewRequest("DELETE", "/Appointment", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		provider.AssertNotCalled(t, "DeleteMany")
	})

	t.Run("Delete Many Reports Deleted Ids", func(t *testing.T) {
		provider := new(MockDataProvider)
		provider.On("DeleteMany", mock.Anything, "Appointment", []string{"a", "b"}).
			Return([]string{"a", "b"}, nil)

		router := newResourceTestRouter(provider, authenticatedUsecase())

		req := httptest.NewRequest("DELETE", "/Appointment?ids=a,b", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []string{"a", "b"}, body.Data)
	})
}
