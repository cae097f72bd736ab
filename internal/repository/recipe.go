package repository

import (
	"context"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// Recipe defines the interface for recipe graph persistence.
// Recipes and their lines are populated by an external recipe-sync
// process; this engine only reads them.
type Recipe interface {
	// GetSellableRecipes returns top-level recipes with a POS item identifier
	GetSellableRecipes(ctx context.Context) ([]domain.Recipe, error)
	// GetPrepRecipes returns all reusable prep recipes
	GetPrepRecipes(ctx context.Context) ([]domain.Recipe, error)
	// GetIngredientLines returns the lines for the given recipes, ordered by position
	GetIngredientLines(ctx context.Context, recipeIDs []string) ([]domain.RecipeIngredient, error)
}
