package domain

import "time"

// Ingredient is a tracked stock item. Quantities are expressed in the
// ingredient's own Unit. An ingredient participates in recalculation only
// once it has at least one physical count on record.
type Ingredient struct {
	ID                  string     `json:"ingredient_id"`
	Name                string     `json:"name"`
	Unit                *string    `json:"unit,omitempty"`
	CurrentQuantity     float64    `json:"current_quantity"`
	ParLevel            *float64   `json:"par_level,omitempty"`
	LastCountedAt       *time.Time `json:"last_counted_at,omitempty"`
	LastCountedQuantity float64    `json:"last_counted_quantity"`
	ExpectedQuantity    *float64   `json:"expected_quantity,omitempty"`
	CreatedAt           time.Time  `json:"created_at,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at,omitempty"`
}

// BaseUnit returns the ingredient's unit of measure, or empty when the
// ingredient has no unit configured
func (i *Ingredient) BaseUnit() string {
	if i.Unit == nil {
		return ""
	}
	return *i.Unit
}

// RecalcResult summarizes one full recalculation pass
type RecalcResult struct {
	Updated int `json:"updated"`
	Alerts  int `json:"alerts"`
	Failed  int `json:"failed"`
}
