package domain

import "time"

// SaleLine is one sold-item row synced from the point-of-sale system.
// POSItemID is nil when the POS reported a line with no item identifier;
// such lines are ignored by aggregation.
type SaleLine struct {
	ID        string    `json:"sale_line_id"`
	Date      time.Time `json:"date"`
	POSItemID *string   `json:"pos_item_id,omitempty"`
	ItemName  string    `json:"item_name,omitempty"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
