package recipe

import (
	"strings"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/units"
)

// UsagePerServing computes how much of the named ingredient, expressed in
// its base unit, one serving of the recipe consumes. Prep references are
// expanded recursively: the line quantity converted into the prep's batch
// unit over the batch size gives the fraction of one prepared batch used
// per serving, which scales everything the prep itself consumes.
//
// Degradation rules: prep references that do not resolve, raw lines whose
// units cannot be converted, and preps with no usable batch size all
// contribute zero. Partial recipe data must never block a whole pass.
//
// visited guards against reference cycles. Each branch receives its own
// copy, so two sibling preps referencing the same deeper prep are each
// expanded once on their own branch. Pass nil at the top level.
func UsagePerServing(ingredientName, baseUnit string, rec *domain.Recipe, graph *Graph, visited map[string]struct{}) float64 {
	if rec == nil || graph == nil {
		return 0
	}
	if _, seen := visited[rec.ID]; seen {
		return 0
	}

	branch := make(map[string]struct{}, len(visited)+1)
	for id := range visited {
		branch[id] = struct{}{}
	}
	branch[rec.ID] = struct{}{}

	var total float64
	for _, line := range graph.LinesByRecipeID[rec.ID] {
		switch line.Type {
		case domain.LineTypeRaw:
			if !strings.EqualFold(line.Name, ingredientName) {
				continue
			}
			total += convertLine(line.Quantity, line.UOM, baseUnit)

		case domain.LineTypePrep:
			if line.PrepRef == nil {
				continue
			}
			prep, ok := graph.PrepByExternalRef[*line.PrepRef]
			if !ok || prep.BatchSize == nil || *prep.BatchSize == 0 || prep.BatchUOM == nil {
				continue
			}

			qtyInBatchUnits, err := units.Convert(line.Quantity, line.UOM, *prep.BatchUOM)
			if err != nil {
				continue
			}
			servingFraction := qtyInBatchUnits / *prep.BatchSize

			total += servingFraction * UsagePerServing(ingredientName, baseUnit, prep, graph, branch)
		}
	}

	return total
}

// convertLine converts a raw line quantity into the ingredient's base unit.
// An ingredient with no base unit takes the line's quantity as-is; a
// conversion failure drops the line.
func convertLine(quantity float64, lineUOM, baseUnit string) float64 {
	if baseUnit == "" {
		return quantity
	}
	converted, err := units.Convert(quantity, lineUOM, baseUnit)
	if err != nil {
		return 0
	}
	return converted
}
