// Package alert manages the restock alert lifecycle for ingredients.
package alert

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/metrics"
	"github.com/osse101/BarSentry_Go/internal/repository"
)

// Manager defines the interface for alert lifecycle operations
type Manager interface {
	// Reconcile drives the per-ingredient alert state machine from the
	// freshly computed expected quantity. Returns true when a new alert
	// was raised.
	Reconcile(ctx context.Context, ingredient *domain.Ingredient, expectedQuantity float64) (bool, error)
	ListAlerts(ctx context.Context, resolved *bool) ([]domain.InventoryAlert, error)
}

type manager struct {
	repo  repository.Alert
	caser cases.Caser
}

// NewManager creates a new alert lifecycle manager
func NewManager(repo repository.Alert) Manager {
	return &manager{
		repo:  repo,
		caser: cases.Title(language.English),
	}
}

// Reconcile implements the {no-alert} <-> {unresolved-alert} state machine.
// With no par level there is nothing to compare against. At or below par,
// exactly one unresolved alert must exist (never duplicated); above par,
// any unresolved alert is resolved.
func (m *manager) Reconcile(ctx context.Context, ingredient *domain.Ingredient, expectedQuantity float64) (bool, error) {
	if ingredient.ParLevel == nil {
		return false, nil
	}
	log := logger.FromContext(ctx)
	par := *ingredient.ParLevel

	existing, err := m.repo.GetUnresolvedAlert(ctx, ingredient.ID)
	if err != nil {
		return false, fmt.Errorf("failed to get unresolved alert: %w", err)
	}

	if expectedQuantity > par {
		if existing == nil {
			return false, nil
		}
		if err := m.repo.ResolveAlert(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("failed to resolve alert: %w", err)
		}
		log.Info("Alert resolved", "ingredient", ingredient.Name, "alertID", existing.ID, "expected", expectedQuantity, "par", par)
		return false, nil
	}

	// At or below par: idempotent, never duplicate
	if existing != nil {
		return false, nil
	}

	alertType := domain.AlertTypeLowStock
	if expectedQuantity == 0 {
		alertType = domain.AlertTypeOutOfStock
	}

	newAlert := &domain.InventoryAlert{
		IngredientID: ingredient.ID,
		AlertType:    alertType,
		Threshold:    par,
		Message:      m.formatMessage(ingredient, alertType, expectedQuantity, par),
	}
	id, err := m.repo.InsertAlert(ctx, newAlert)
	if errors.Is(err, domain.ErrDuplicateAlert) {
		// Lost a race with a concurrent pass; the alert exists, nothing to do
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert alert: %w", err)
	}
	metrics.AlertsRaised.WithLabelValues(string(alertType)).Inc()

	log.Info("Alert raised", "ingredient", ingredient.Name, "alertID", id, "type", alertType, "expected", expectedQuantity, "par", par)
	return true, nil
}

// ListAlerts returns alerts, optionally filtered by resolved state
func (m *manager) ListAlerts(ctx context.Context, resolved *bool) ([]domain.InventoryAlert, error) {
	alerts, err := m.repo.ListAlerts(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (m *manager) formatMessage(ingredient *domain.Ingredient, alertType domain.AlertType, expected, par float64) string {
	name := m.caser.String(ingredient.Name)
	if alertType == domain.AlertTypeOutOfStock {
		return fmt.Sprintf("%s is out of stock (par level %g %s)", name, par, ingredient.BaseUnit())
	}
	return fmt.Sprintf("%s is low: %g %s remaining, par level %g", name, expected, ingredient.BaseUnit(), par)
}
