package domain

import "time"

// AlertType classifies an unresolved inventory alert
type AlertType string

const (
	AlertTypeLowStock   AlertType = "low_stock"
	AlertTypeOutOfStock AlertType = "out_of_stock"
)

// InventoryAlert is a restock alert for an ingredient.
// Invariant: at most one unresolved alert per ingredient at any time.
type InventoryAlert struct {
	ID           string     `json:"alert_id"`
	IngredientID string     `json:"ingredient_id"`
	AlertType    AlertType  `json:"alert_type"`
	Threshold    float64    `json:"threshold"` // par level at creation time
	Message      string     `json:"message"`
	Resolved     bool       `json:"resolved"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
}
