package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// MockAlertManager mocks the alert.Manager interface
type MockAlertManager struct {
	mock.Mock
}

func (m *MockAlertManager) Reconcile(ctx context.Context, ingredient *domain.Ingredient, expectedQuantity float64) (bool, error) {
	args := m.Called(ctx, ingredient, expectedQuantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlertManager) ListAlerts(ctx context.Context, resolved *bool) ([]domain.InventoryAlert, error) {
	args := m.Called(ctx, resolved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryAlert), args.Error(1)
}

func TestHandleListAlerts(t *testing.T) {
	t.Run("All Alerts", func(t *testing.T) {
		mgr := &MockAlertManager{}
		mgr.On("ListAlerts", mock.Anything, (*bool)(nil)).Return([]domain.InventoryAlert{
			{ID: "a1", IngredientID: "i1", AlertType: domain.AlertTypeLowStock},
		}, nil)

		req := httptest.NewRequest("GET", "/alerts", nil)
		w := httptest.NewRecorder()

		HandleListAlerts(mgr).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
		assert.Contains(t, w.Body.String(), "low_stock")
		mgr.AssertExpectations(t)
	})

	t.Run("Filtered By Resolved", func(t *testing.T) {
		mgr := &MockAlertManager{}
		mgr.On("ListAlerts", mock.Anything, mock.MatchedBy(func(r *bool) bool {
			return r != nil && !*r
		})).Return([]domain.InventoryAlert{}, nil)

		req := httptest.NewRequest("GET", "/alerts?resolved=false", nil)
		w := httptest.NewRecorder()

		HandleListAlerts(mgr).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mgr.AssertExpectations(t)
	})

	t.Run("Invalid Resolved Parameter", func(t *testing.T) {
		mgr := &MockAlertManager{}

		req := httptest.NewRequest("GET", "/alerts?resolved=banana", nil)
		w := httptest.NewRecorder()

		HandleListAlerts(mgr).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidResolvedArg)
		mgr.AssertNotCalled(t, "ListAlerts")
	})

	t.Run("Service Error", func(t *testing.T) {
		mgr := &MockAlertManager{}
		mgr.On("ListAlerts", mock.Anything, (*bool)(nil)).Return(nil, assert.AnError)

		req := httptest.NewRequest("GET", "/alerts", nil)
		w := httptest.NewRecorder()

		HandleListAlerts(mgr).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mgr.AssertExpectations(t)
	})
}
