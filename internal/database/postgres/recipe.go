package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/BarSentry_Go/internal/domain"
)

// RecipeRepository implements the recipe repository for PostgreSQL.
// Recipes and their lines are written by the recipe-sync process; this
// repository only reads them.
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Type,
			&rec.POSItemID,
			&rec.ExternalRef,
			&rec.BatchSize,
			&rec.BatchUOM,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return recipes, nil
}

// GetSellableRecipes retrieves top-level recipes linked to a POS item
func (r *RecipeRepository) GetSellableRecipes(ctx context.Context) ([]domain.Recipe, error) {
	query := `
		SELECT id, name, recipe_type, pos_item_id, external_ref, batch_size, batch_uom, created_at
		FROM recipes
		WHERE recipe_type = 'top_level' AND pos_item_id IS NOT NULL
		ORDER BY name
	`
	return r.queryRecipes(ctx, query)
}

// GetPrepRecipes retrieves all reusable prep recipes
func (r *RecipeRepository) GetPrepRecipes(ctx context.Context) ([]domain.Recipe, error) {
	query := `
		SELECT id, name, recipe_type, pos_item_id, external_ref, batch_size, batch_uom, created_at
		FROM recipes
		WHERE recipe_type = 'prep'
		ORDER BY name
	`
	return r.queryRecipes(ctx, query)
}

// GetIngredientLines retrieves the bill-of-materials lines for the given recipes
func (r *RecipeRepository) GetIngredientLines(ctx context.Context, recipeIDs []string) ([]domain.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, recipe_id, line_type, name, quantity, uom, prep_ref, position
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, position
	`

	rows, err := r.db.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredientLines, err)
	}
	defer rows.Close()

	var lines []domain.RecipeIngredient
	for rows.Next() {
		var line domain.RecipeIngredient
		err := rows.Scan(
			&line.ID,
			&line.RecipeID,
			&line.Type,
			&line.Name,
			&line.Quantity,
			&line.UOM,
			&line.PrepRef,
			&line.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lines, nil
}
