package repository

import (
	"context"
	"time"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// Ingredient defines the interface for ingredient persistence
type Ingredient interface {
	// GetCountedIngredients returns all ingredients with a recorded physical count
	GetCountedIngredients(ctx context.Context) ([]domain.Ingredient, error)
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error)
	// UpdateExpectedQuantity overwrites the derived expected quantity
	UpdateExpectedQuantity(ctx context.Context, id string, expected float64) error
	// RecordCount stores a manual physical count
	RecordCount(ctx context.Context, id string, quantity float64, countedAt time.Time) error
}
