package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

// buildGraph assembles an in-memory graph from recipes and their lines
func buildGraph(recipes []*domain.Recipe, lines []domain.RecipeIngredient) *Graph {
	g := &Graph{
		ByPOSItemID:       make(map[string]*domain.Recipe),
		LinesByRecipeID:   make(map[string][]domain.RecipeIngredient),
		PrepByExternalRef: make(map[string]*domain.Recipe),
	}
	for _, r := range recipes {
		if r.POSItemID != nil {
			g.ByPOSItemID[*r.POSItemID] = r
		}
		if r.ExternalRef != nil {
			g.PrepByExternalRef[*r.ExternalRef] = r
		}
	}
	for _, l := range lines {
		g.LinesByRecipeID[l.RecipeID] = append(g.LinesByRecipeID[l.RecipeID], l)
	}
	return g
}

func TestUsagePerServingDirect(t *testing.T) {
	margarita := &domain.Recipe{ID: "r1", Name: "Margarita", Type: domain.RecipeTypeTopLevel, POSItemID: strPtr("pos-marg")}
	graph := buildGraph([]*domain.Recipe{margarita}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Tequila Blanco", Quantity: 2, UOM: "oz"},
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Lime Juice", Quantity: 1, UOM: "oz"},
	})

	usage := UsagePerServing("Tequila Blanco", "oz", margarita, graph, nil)
	assert.InDelta(t, 2.0, usage, 0.0001)
}

func TestUsagePerServingCaseInsensitiveMatch(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Tequila Blanco", Quantity: 2, UOM: "oz"},
	})

	usage := UsagePerServing("tequila blanco", "oz", rec, graph, nil)
	assert.InDelta(t, 2.0, usage, 0.0001)
}

func TestUsagePerServingCrossUnitConversion(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Vodka", Quantity: 2, UOM: "oz"},
	})

	// Ingredient tracked in ml, recipe line in oz
	usage := UsagePerServing("Vodka", "ml", rec, graph, nil)
	assert.InDelta(t, 59.147, usage, 0.001)
}

func TestUsagePerServingNestedPrep(t *testing.T) {
	// Margarita uses 1 oz of house sour; one 32-oz batch of house sour
	// contains 8 oz of lime juice. Per serving: (1/32) * 8 = 0.25 oz.
	marg := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	sour := &domain.Recipe{
		ID: "p1", Type: domain.RecipeTypePrep, ExternalRef: strPtr("prep-sour"),
		BatchSize: floatPtr(32), BatchUOM: strPtr("oz"),
	}
	graph := buildGraph([]*domain.Recipe{marg, sour}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "House Sour", Quantity: 1, UOM: "oz", PrepRef: strPtr("prep-sour")},
		{RecipeID: "p1", Type: domain.LineTypeRaw, Name: "Lime Juice", Quantity: 8, UOM: "oz"},
	})

	usage := UsagePerServing("Lime Juice", "oz", marg, graph, nil)
	assert.InDelta(t, 0.25, usage, 0.0001)
}

func TestUsagePerServingPrepBatchUnitMismatch(t *testing.T) {
	// Line consumes 50 ml of a syrup whose batch is 2 l: fraction = 0.025.
	// The syrup uses 1 kg of sugar per batch -> 25 g per serving.
	drink := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	syrup := &domain.Recipe{
		ID: "p1", Type: domain.RecipeTypePrep, ExternalRef: strPtr("prep-syrup"),
		BatchSize: floatPtr(2), BatchUOM: strPtr("l"),
	}
	graph := buildGraph([]*domain.Recipe{drink, syrup}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "Simple Syrup", Quantity: 50, UOM: "ml", PrepRef: strPtr("prep-syrup")},
		{RecipeID: "p1", Type: domain.LineTypeRaw, Name: "Sugar", Quantity: 1, UOM: "kg"},
	})

	usage := UsagePerServing("Sugar", "g", drink, graph, nil)
	assert.InDelta(t, 25.0, usage, 0.0001)
}

func TestUsagePerServingDeeplyNestedPreps(t *testing.T) {
	// top -> prep A -> prep B, each level consuming half a batch
	top := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	prepA := &domain.Recipe{ID: "pa", Type: domain.RecipeTypePrep, ExternalRef: strPtr("a"), BatchSize: floatPtr(2), BatchUOM: strPtr("oz")}
	prepB := &domain.Recipe{ID: "pb", Type: domain.RecipeTypePrep, ExternalRef: strPtr("b"), BatchSize: floatPtr(2), BatchUOM: strPtr("oz")}
	graph := buildGraph([]*domain.Recipe{top, prepA, prepB}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "A", Quantity: 1, UOM: "oz", PrepRef: strPtr("a")},
		{RecipeID: "pa", Type: domain.LineTypePrep, Name: "B", Quantity: 1, UOM: "oz", PrepRef: strPtr("b")},
		{RecipeID: "pb", Type: domain.LineTypeRaw, Name: "Bitters", Quantity: 4, UOM: "oz"},
	})

	// 0.5 * 0.5 * 4 = 1
	usage := UsagePerServing("Bitters", "oz", top, graph, nil)
	assert.InDelta(t, 1.0, usage, 0.0001)
}

func TestUsagePerServingCycleGuard(t *testing.T) {
	// prep A references prep B which references prep A again
	top := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	prepA := &domain.Recipe{ID: "pa", Type: domain.RecipeTypePrep, ExternalRef: strPtr("a"), BatchSize: floatPtr(1), BatchUOM: strPtr("oz")}
	prepB := &domain.Recipe{ID: "pb", Type: domain.RecipeTypePrep, ExternalRef: strPtr("b"), BatchSize: floatPtr(1), BatchUOM: strPtr("oz")}
	graph := buildGraph([]*domain.Recipe{top, prepA, prepB}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "A", Quantity: 1, UOM: "oz", PrepRef: strPtr("a")},
		{RecipeID: "pa", Type: domain.LineTypePrep, Name: "B", Quantity: 1, UOM: "oz", PrepRef: strPtr("b")},
		{RecipeID: "pa", Type: domain.LineTypeRaw, Name: "Gin", Quantity: 1, UOM: "oz"},
		{RecipeID: "pb", Type: domain.LineTypePrep, Name: "A", Quantity: 1, UOM: "oz", PrepRef: strPtr("a")},
	})

	// Must terminate; A's direct gin contribution counts exactly once
	usage := UsagePerServing("Gin", "oz", top, graph, nil)
	assert.InDelta(t, 1.0, usage, 0.0001)
}

func TestUsagePerServingSiblingBranchesNotBlocked(t *testing.T) {
	// Two sibling preps both reference the same deeper prep. The visited
	// set is per-branch, so each sibling expands it independently.
	top := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	left := &domain.Recipe{ID: "pl", Type: domain.RecipeTypePrep, ExternalRef: strPtr("left"), BatchSize: floatPtr(1), BatchUOM: strPtr("oz")}
	right := &domain.Recipe{ID: "pr", Type: domain.RecipeTypePrep, ExternalRef: strPtr("right"), BatchSize: floatPtr(1), BatchUOM: strPtr("oz")}
	deep := &domain.Recipe{ID: "pd", Type: domain.RecipeTypePrep, ExternalRef: strPtr("deep"), BatchSize: floatPtr(1), BatchUOM: strPtr("oz")}
	graph := buildGraph([]*domain.Recipe{top, left, right, deep}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "Left", Quantity: 1, UOM: "oz", PrepRef: strPtr("left")},
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "Right", Quantity: 1, UOM: "oz", PrepRef: strPtr("right")},
		{RecipeID: "pl", Type: domain.LineTypePrep, Name: "Deep", Quantity: 1, UOM: "oz", PrepRef: strPtr("deep")},
		{RecipeID: "pr", Type: domain.LineTypePrep, Name: "Deep", Quantity: 1, UOM: "oz", PrepRef: strPtr("deep")},
		{RecipeID: "pd", Type: domain.LineTypeRaw, Name: "Honey", Quantity: 1, UOM: "oz"},
	})

	usage := UsagePerServing("Honey", "oz", top, graph, nil)
	assert.InDelta(t, 2.0, usage, 0.0001)
}

func TestUsagePerServingUnresolvedPrepContributesZero(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "Ghost Mix", Quantity: 1, UOM: "oz", PrepRef: strPtr("missing")},
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Rum", Quantity: 1.5, UOM: "oz"},
	})

	usage := UsagePerServing("Rum", "oz", rec, graph, nil)
	assert.InDelta(t, 1.5, usage, 0.0001)
}

func TestUsagePerServingPrepWithoutBatchSizeSkipped(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	prep := &domain.Recipe{ID: "p1", Type: domain.RecipeTypePrep, ExternalRef: strPtr("p")}
	graph := buildGraph([]*domain.Recipe{rec, prep}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypePrep, Name: "P", Quantity: 1, UOM: "oz", PrepRef: strPtr("p")},
		{RecipeID: "p1", Type: domain.LineTypeRaw, Name: "Rum", Quantity: 8, UOM: "oz"},
	})

	usage := UsagePerServing("Rum", "oz", rec, graph, nil)
	assert.Equal(t, 0.0, usage)
}

func TestUsagePerServingIncompatibleLineUnitsDropped(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		// Olives tracked by count, but this line is in oz: unconvertible
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Olives", Quantity: 2, UOM: "oz"},
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Olives", Quantity: 3, UOM: "each"},
	})

	usage := UsagePerServing("Olives", "each", rec, graph, nil)
	assert.InDelta(t, 3.0, usage, 0.0001)
}

func TestUsagePerServingNoBaseUnitTakesLineQuantity(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Garnish", Quantity: 2, UOM: "each"},
	})

	usage := UsagePerServing("Garnish", "", rec, graph, nil)
	assert.InDelta(t, 2.0, usage, 0.0001)
}

func TestUsagePerServingNoMatchingLines(t *testing.T) {
	rec := &domain.Recipe{ID: "r1", Type: domain.RecipeTypeTopLevel}
	graph := buildGraph([]*domain.Recipe{rec}, []domain.RecipeIngredient{
		{RecipeID: "r1", Type: domain.LineTypeRaw, Name: "Gin", Quantity: 2, UOM: "oz"},
	})

	usage := UsagePerServing("Whiskey", "oz", rec, graph, nil)
	assert.Equal(t, 0.0, usage)
}
