package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// MockInventoryService mocks the inventory.Service interface
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Recalculate(ctx context.Context) (domain.RecalcResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RecalcResult), args.Error(1)
}

func (m *MockInventoryService) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockInventoryService) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockInventoryService) RecordCount(ctx context.Context, id string, quantity float64, countedAt time.Time) error {
	args := m.Called(ctx, id, quantity, countedAt)
	return args.Error(0)
}

func newIngredientRouter(svc *MockInventoryService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/inventory/{ingredientID}", HandleGetIngredient(svc))
	r.Post("/inventory/{ingredientID}/count", HandleRecordCount(svc))
	return r
}

func TestHandleRecalculate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockInventoryService{}
		svc.On("Recalculate", mock.Anything).Return(domain.RecalcResult{Updated: 3, Alerts: 1}, nil)

		req := httptest.NewRequest("POST", "/inventory/recalculate", nil)
		w := httptest.NewRecorder()

		HandleRecalculate(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":3`)
		assert.Contains(t, w.Body.String(), `"alerts":1`)
		svc.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		svc := &MockInventoryService{}
		svc.On("Recalculate", mock.Anything).Return(domain.RecalcResult{}, assert.AnError)

		req := httptest.NewRequest("POST", "/inventory/recalculate", nil)
		w := httptest.NewRecorder()

		HandleRecalculate(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		svc.AssertExpectations(t)
	})
}

func TestHandleListIngredients(t *testing.T) {
	svc := &MockInventoryService{}
	expected := 54.0
	svc.On("ListIngredients", mock.Anything).Return([]domain.Ingredient{
		{ID: "i1", Name: "Tequila Blanco", ExpectedQuantity: &expected},
	}, nil)

	req := httptest.NewRequest("GET", "/inventory", nil)
	w := httptest.NewRecorder()

	HandleListIngredients(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "Tequila Blanco")
	svc.AssertExpectations(t)
}

func TestHandleGetIngredient(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := &MockInventoryService{}
		svc.On("GetIngredient", mock.Anything, "i1").Return(&domain.Ingredient{ID: "i1", Name: "Gin"}, nil)

		req := httptest.NewRequest("GET", "/inventory/i1", nil)
		w := httptest.NewRecorder()

		newIngredientRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Gin"`)
		svc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockInventoryService{}
		svc.On("GetIngredient", mock.Anything, "missing").Return(nil, domain.ErrIngredientNotFound)

		req := httptest.NewRequest("GET", "/inventory/missing", nil)
		w := httptest.NewRecorder()

		newIngredientRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgIngredientNotFound)
		svc.AssertExpectations(t)
	})
}

func TestHandleRecordCount(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockInventoryService{}
		countedAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
		svc.On("RecordCount", mock.Anything, "i1", 12.5, countedAt).Return(nil)

		body, _ := json.Marshal(RecordCountRequest{Quantity: 12.5, CountedAt: &countedAt})
		req := httptest.NewRequest("POST", "/inventory/i1/count", bytes.NewReader(body))
		w := httptest.NewRecorder()

		newIngredientRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgCountRecordedSuccess)
		svc.AssertExpectations(t)
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		svc := &MockInventoryService{}

		req := httptest.NewRequest("POST", "/inventory/i1/count", bytes.NewReader([]byte(`{"quantity":-1}`)))
		w := httptest.NewRecorder()

		newIngredientRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "RecordCount")
	})

	t.Run("Invalid Body", func(t *testing.T) {
		svc := &MockInventoryService{}

		req := httptest.NewRequest("POST", "/inventory/i1/count", bytes.NewReader([]byte(`not json`)))
		w := httptest.NewRecorder()

		newIngredientRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}
