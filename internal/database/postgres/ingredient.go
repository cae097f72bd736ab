package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/BarSentry_Go/internal/domain"
)

// IngredientRepository implements the ingredient repository for PostgreSQL
type IngredientRepository struct {
	db *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{db: db}
}

const ingredientColumns = `
	id, name, unit, current_quantity, par_level,
	last_counted_at, COALESCE(last_counted_quantity, 0), expected_quantity,
	created_at, updated_at
`

func scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := row.Scan(
		&ing.ID,
		&ing.Name,
		&ing.Unit,
		&ing.CurrentQuantity,
		&ing.ParLevel,
		&ing.LastCountedAt,
		&ing.LastCountedQuantity,
		&ing.ExpectedQuantity,
		&ing.CreatedAt,
		&ing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// GetCountedIngredients retrieves all ingredients that have a physical count on record
func (r *IngredientRepository) GetCountedIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE last_counted_at IS NOT NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, *ing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ingredients, nil
}

// GetAllIngredients retrieves every tracked ingredient
func (r *IngredientRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, *ing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ingredients, nil
}

// GetIngredientByID retrieves one ingredient by its identifier
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE id = $1
	`

	ing, err := scanIngredient(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredient, err)
	}

	return ing, nil
}

// UpdateExpectedQuantity overwrites an ingredient's derived expected quantity
func (r *IngredientRepository) UpdateExpectedQuantity(ctx context.Context, id string, expected float64) error {
	query := `
		UPDATE ingredients
		SET expected_quantity = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, expected)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateExpectedQuantity, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrIngredientNotFound
	}

	return nil
}

// RecordCount stores a manual physical count for an ingredient.
// The count becomes the new baseline for expected-quantity recalculation.
func (r *IngredientRepository) RecordCount(ctx context.Context, id string, quantity float64, countedAt time.Time) error {
	query := `
		UPDATE ingredients
		SET last_counted_quantity = $2,
			last_counted_at = $3,
			current_quantity = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, quantity, countedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordCount, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrIngredientNotFound
	}

	return nil
}
