package sales

import (
	"context"
	"fmt"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/metrics"
	"github.com/osse101/BarSentry_Go/internal/repository"
)

// Importer ingests batches of sale lines pushed in from the POS sync
type Importer interface {
	ImportLines(ctx context.Context, lines []domain.SaleLine) (int, error)
}

type importer struct {
	repo repository.Sales
}

// NewImporter creates a new sales importer
func NewImporter(repo repository.Sales) Importer {
	return &importer{repo: repo}
}

// ImportLines stores a batch of sale lines and returns the number written.
// Lines with a non-positive quantity are rejected up front; a line with no
// POS item identifier is stored anyway so imports stay auditable, it just
// never matches a recipe.
func (i *importer) ImportLines(ctx context.Context, lines []domain.SaleLine) (int, error) {
	log := logger.FromContext(ctx)

	if len(lines) == 0 {
		return 0, nil
	}

	for idx, line := range lines {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("%w: line %d has non-positive quantity %g", domain.ErrInvalidInput, idx, line.Quantity)
		}
		if line.Date.IsZero() {
			return 0, fmt.Errorf("%w: line %d has no sale date", domain.ErrInvalidInput, idx)
		}
	}

	inserted, err := i.repo.InsertSaleLines(ctx, lines)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale lines: %w", err)
	}

	metrics.SaleLinesIngested.Add(float64(inserted))
	log.Info("Sale lines imported", "count", inserted)
	return inserted, nil
}
