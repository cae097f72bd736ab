// Package sales reduces raw POS sale lines into per-item sold totals.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/repository"
)

// PageSize is the number of sale lines fetched per repository call
const PageSize = 1000

// Aggregator sums sold quantities per POS item identifier
type Aggregator struct {
	repo repository.Sales
}

// NewAggregator creates a new sales aggregator
func NewAggregator(repo repository.Sales) *Aggregator {
	return &Aggregator{repo: repo}
}

// AggregateSince returns total quantity sold per POS item identifier for all
// sale lines dated on/after the calendar date of since. Only the date portion
// of since is compared: every sale on the count's calendar date is included
// even if it was rung up before the count happened. Known approximation that
// slightly overstates usage on the count day; do not tighten to time-precise
// filtering without product sign-off.
func (a *Aggregator) AggregateSince(ctx context.Context, since time.Time) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	sinceDate := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())

	totals := make(map[string]float64)
	pages := 0
	for offset := 0; ; offset += PageSize {
		lines, err := a.repo.GetSaleLinesSince(ctx, sinceDate, PageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get sale lines: %w", err)
		}
		pages++

		for _, line := range lines {
			if line.POSItemID == nil || *line.POSItemID == "" {
				continue
			}
			totals[*line.POSItemID] += line.Quantity
		}

		// A short page means we have drained the range
		if len(lines) < PageSize {
			break
		}
	}

	log.Debug("Sales aggregated", "since", sinceDate.Format(time.DateOnly), "pages", pages, "items", len(totals))
	return totals, nil
}
