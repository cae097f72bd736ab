package repository

import (
	"context"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// Alert defines the interface for inventory alert persistence
type Alert interface {
	// GetUnresolvedAlert returns the unresolved alert for an ingredient,
	// or nil when none exists.
	GetUnresolvedAlert(ctx context.Context, ingredientID string) (*domain.InventoryAlert, error)
	InsertAlert(ctx context.Context, alert *domain.InventoryAlert) (string, error)
	ResolveAlert(ctx context.Context, alertID string) error
	// ListAlerts returns alerts, optionally filtered by resolved state,
	// newest first.
	ListAlerts(ctx context.Context, resolved *bool) ([]domain.InventoryAlert, error)
}
