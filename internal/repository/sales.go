package repository

import (
	"context"
	"time"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// Sales defines the interface for sales-line persistence.
// Sale lines are append-only rows pushed in by the point-of-sale sync.
type Sales interface {
	// GetSaleLinesSince returns one page of sale lines dated on/after since
	// (calendar-date comparison) with a non-null POS item identifier.
	GetSaleLinesSince(ctx context.Context, since time.Time, limit, offset int) ([]domain.SaleLine, error)
	InsertSaleLines(ctx context.Context, lines []domain.SaleLine) (int, error)
}
