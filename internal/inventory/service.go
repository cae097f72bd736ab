// Package inventory implements the expected inventory engine: for every
// ingredient with a known physical count it computes how much should
// remain right now by subtracting usage implied by sales since the count,
// and keeps restock alerts in step.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/BarSentry_Go/internal/alert"
	"github.com/osse101/BarSentry_Go/internal/concurrency"
	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/metrics"
	"github.com/osse101/BarSentry_Go/internal/recipe"
	"github.com/osse101/BarSentry_Go/internal/repository"
)

// recalcPassName keys the guard that serializes full passes
const recalcPassName = "inventory-recalculate"

// expectedQuantityScale is the decimal precision expected quantities are
// rounded to before persisting
const expectedQuantityScale = 3

// GraphLoader loads the recipe graph for a pass
type GraphLoader interface {
	LoadGraph(ctx context.Context) (*recipe.Graph, error)
}

// SalesAggregator reduces sales history to per-item sold totals
type SalesAggregator interface {
	AggregateSince(ctx context.Context, since time.Time) (map[string]float64, error)
}

// Service defines the interface for expected inventory operations
type Service interface {
	// Recalculate runs one full pass over all counted ingredients
	Recalculate(ctx context.Context) (domain.RecalcResult, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error)
	RecordCount(ctx context.Context, id string, quantity float64, countedAt time.Time) error
}

type service struct {
	repo   repository.Ingredient
	graphs GraphLoader
	sales  SalesAggregator
	alerts alert.Manager
	guard  *concurrency.PassGuard
	cache  *ingredientCache
}

// NewService creates a new expected inventory service
func NewService(repo repository.Ingredient, graphs GraphLoader, sales SalesAggregator, alerts alert.Manager, guard *concurrency.PassGuard) Service {
	return &service{
		repo:   repo,
		graphs: graphs,
		sales:  sales,
		alerts: alerts,
		guard:  guard,
		cache:  newIngredientCache(defaultCacheSize, defaultCacheTTL),
	}
}

// Recalculate walks every counted ingredient, derives its expected quantity
// from sales recorded since its count, persists the result and reconciles
// alert state. A failure on one ingredient is logged and skipped; it never
// aborts the rest of the pass. Full passes are serialized: the engine is
// invoked externally (after a sales sync or by an operator) and two passes
// racing on the same rows would lose updates.
func (s *service) Recalculate(ctx context.Context) (domain.RecalcResult, error) {
	log := logger.FromContext(ctx)
	s.guard.Acquire(recalcPassName)
	defer s.guard.Release(recalcPassName)

	start := time.Now()
	defer func() {
		metrics.RecalcPasses.Inc()
		metrics.RecalcPassDuration.Observe(time.Since(start).Seconds())
		s.cache.Purge()
	}()

	var result domain.RecalcResult

	counted, err := s.repo.GetCountedIngredients(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to get counted ingredients: %w", err)
	}
	if len(counted) == 0 {
		log.Info("Recalculation skipped, no counted ingredients")
		return result, nil
	}

	graph, err := s.graphs.LoadGraph(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load recipe graph: %w", err)
	}

	// Nothing sold is linked to inventory: expected is simply the last count
	if len(graph.ByPOSItemID) == 0 {
		log.Info("No sellable recipes, resetting expected quantities to last counts")
		for i := range counted {
			ing := &counted[i]
			if err := s.persistExpected(ctx, ing.ID, ing.LastCountedQuantity); err != nil {
				log.Error("Failed to persist expected quantity", "error", err, "ingredient", ing.Name)
				result.Failed++
				continue
			}
			result.Updated++
		}
		return result, nil
	}

	for i := range counted {
		ing := &counted[i]
		expected, err := s.recalculateIngredient(ctx, ing, graph)
		if err != nil {
			// Per-ingredient isolation: log, count, move on
			log.Error("Failed to recalculate ingredient", "error", err, "ingredient", ing.Name)
			metrics.IngredientsFailed.Inc()
			result.Failed++
			continue
		}
		result.Updated++

		raised, err := s.alerts.Reconcile(ctx, ing, expected)
		if err != nil {
			log.Error("Failed to reconcile alert", "error", err, "ingredient", ing.Name)
			result.Failed++
			continue
		}
		if raised {
			result.Alerts++
		}
	}

	log.Info("Recalculation complete", "updated", result.Updated, "alerts", result.Alerts, "failed", result.Failed, "duration", time.Since(start))
	return result, nil
}

// recalculateIngredient computes and persists one ingredient's expected quantity
func (s *service) recalculateIngredient(ctx context.Context, ing *domain.Ingredient, graph *recipe.Graph) (float64, error) {
	sold, err := s.sales.AggregateSince(ctx, *ing.LastCountedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	var totalUsage float64
	for posItemID, qty := range sold {
		rec, ok := graph.ByPOSItemID[posItemID]
		if !ok {
			// Unmatched sale: the POS sells things we don't track
			continue
		}
		totalUsage += recipe.UsagePerServing(ing.Name, ing.BaseUnit(), rec, graph, nil) * qty
	}

	expected := ing.LastCountedQuantity - totalUsage
	if expected < 0 {
		expected = 0
	}
	expected = roundQuantity(expected)

	if err := s.persistExpected(ctx, ing.ID, expected); err != nil {
		return 0, err
	}
	return expected, nil
}

func (s *service) persistExpected(ctx context.Context, id string, expected float64) error {
	if err := s.repo.UpdateExpectedQuantity(ctx, id, expected); err != nil {
		return fmt.Errorf("failed to update expected quantity: %w", err)
	}
	metrics.IngredientsUpdated.Inc()
	return nil
}

// ListIngredients returns all tracked ingredients
func (s *service) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.GetAllIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient returns one ingredient, served from cache when fresh
func (s *service) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	if ing, ok := s.cache.Get(id); ok {
		return ing, nil
	}

	ing, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	s.cache.Set(id, ing)
	return ing, nil
}

// RecordCount stores a manual physical count for an ingredient
func (s *service) RecordCount(ctx context.Context, id string, quantity float64, countedAt time.Time) error {
	log := logger.FromContext(ctx)
	if quantity < 0 {
		return fmt.Errorf("%w: count quantity must not be negative", domain.ErrInvalidInput)
	}

	if err := s.repo.RecordCount(ctx, id, quantity, countedAt); err != nil {
		return fmt.Errorf("failed to record count: %w", err)
	}
	s.cache.Remove(id)

	log.Info("Physical count recorded", "ingredientID", id, "quantity", quantity, "countedAt", countedAt)
	return nil
}

// roundQuantity rounds to the persisted precision without accumulating
// float noise
func roundQuantity(q float64) float64 {
	return decimal.NewFromFloat(q).Round(expectedQuantityScale).InexactFloat64()
}
