package domain

import "time"

// RecipeType distinguishes sellable menu items from reusable prep batches
type RecipeType string

const (
	RecipeTypeTopLevel RecipeType = "top_level"
	RecipeTypePrep     RecipeType = "prep"
)

// LineType distinguishes raw ingredient lines from prep references
type LineType string

const (
	LineTypeRaw  LineType = "raw"
	LineTypePrep LineType = "prep"
)

// Recipe represents a sellable item's bill of materials or a reusable prep batch.
// POSItemID is non-nil only for sellable top-level recipes; ExternalRef is the
// identifier prep recipes are referenced by from other recipes' lines.
// BatchSize/BatchUOM describe the total yield of one prepared batch and are
// only meaningful for prep recipes.
type Recipe struct {
	ID          string     `json:"recipe_id"`
	Name        string     `json:"name"`
	Type        RecipeType `json:"recipe_type"`
	POSItemID   *string    `json:"pos_item_id,omitempty"`
	ExternalRef *string    `json:"external_ref,omitempty"`
	BatchSize   *float64   `json:"batch_size,omitempty"`
	BatchUOM    *string    `json:"batch_uom,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// RecipeIngredient is one line of a recipe's bill of materials.
// PrepRef is set only when Type is LineTypePrep and resolves to another
// recipe's ExternalRef. Lines are exclusively owned by their recipe and
// replaced wholesale on each recipe sync.
type RecipeIngredient struct {
	ID       string   `json:"recipe_ingredient_id"`
	RecipeID string   `json:"recipe_id"`
	Type     LineType `json:"line_type"`
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	UOM      string   `json:"uom"`
	PrepRef  *string  `json:"prep_ref,omitempty"`
	Position int      `json:"position,omitempty"`
}
