// Package recipe loads the recipe dependency graph and computes per-serving
// ingredient usage across arbitrarily nested prep recipes.
package recipe

import (
	"context"
	"fmt"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/repository"
)

// Graph is the flat, read-only view of all recipes relevant to a
// recalculation pass. It is loaded once per pass and must never be
// mutated afterwards, so it is safe to share across goroutines.
type Graph struct {
	// ByPOSItemID maps a sold-item identifier to its sellable recipe
	ByPOSItemID map[string]*domain.Recipe
	// LinesByRecipeID maps a recipe id to its ordered ingredient lines
	LinesByRecipeID map[string][]domain.RecipeIngredient
	// PrepByExternalRef maps a prep reference identifier to its recipe
	PrepByExternalRef map[string]*domain.Recipe
}

// Resolver loads recipe graphs from the recipe store
type Resolver struct {
	repo repository.Recipe
}

// NewResolver creates a new recipe graph resolver
func NewResolver(repo repository.Recipe) *Resolver {
	return &Resolver{repo: repo}
}

// LoadGraph performs the flat load: sellable recipes keyed by POS item id,
// prep recipes keyed by external reference, and the ingredient lines of
// both sets. Recursion through prep references happens in UsagePerServing,
// never here.
func (r *Resolver) LoadGraph(ctx context.Context) (*Graph, error) {
	log := logger.FromContext(ctx)

	sellable, err := r.repo.GetSellableRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sellable recipes: %w", err)
	}

	preps, err := r.repo.GetPrepRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get prep recipes: %w", err)
	}

	graph := &Graph{
		ByPOSItemID:       make(map[string]*domain.Recipe, len(sellable)),
		LinesByRecipeID:   make(map[string][]domain.RecipeIngredient),
		PrepByExternalRef: make(map[string]*domain.Recipe, len(preps)),
	}

	recipeIDs := make([]string, 0, len(sellable)+len(preps))
	for i := range sellable {
		rec := &sellable[i]
		if rec.POSItemID != nil && *rec.POSItemID != "" {
			graph.ByPOSItemID[*rec.POSItemID] = rec
		}
		recipeIDs = append(recipeIDs, rec.ID)
	}
	for i := range preps {
		rec := &preps[i]
		if rec.ExternalRef != nil && *rec.ExternalRef != "" {
			graph.PrepByExternalRef[*rec.ExternalRef] = rec
		}
		recipeIDs = append(recipeIDs, rec.ID)
	}

	if len(recipeIDs) > 0 {
		lines, err := r.repo.GetIngredientLines(ctx, recipeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get ingredient lines: %w", err)
		}
		for _, line := range lines {
			graph.LinesByRecipeID[line.RecipeID] = append(graph.LinesByRecipeID[line.RecipeID], line)
		}
	}

	log.Debug("Recipe graph loaded",
		"sellable", len(graph.ByPOSItemID),
		"preps", len(graph.PrepByExternalRef),
		"recipes_with_lines", len(graph.LinesByRecipeID))
	return graph, nil
}
