package sales

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

// MockSalesRepository serves canned pages and records the querying pattern
type MockSalesRepository struct {
	lines []domain.SaleLine

	gotSince   []time.Time
	gotOffsets []int

	shouldFail bool
	failErr    error
}

func (m *MockSalesRepository) GetSaleLinesSince(ctx context.Context, since time.Time, limit, offset int) ([]domain.SaleLine, error) {
	if m.shouldFail {
		return nil, m.failErr
	}
	m.gotSince = append(m.gotSince, since)
	m.gotOffsets = append(m.gotOffsets, offset)

	if offset >= len(m.lines) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.lines) {
		end = len(m.lines)
	}
	return m.lines[offset:end], nil
}

func (m *MockSalesRepository) InsertSaleLines(ctx context.Context, lines []domain.SaleLine) (int, error) {
	return 0, nil
}

func strPtr(s string) *string { return &s }

func TestAggregateSinceSumsPerItem(t *testing.T) {
	repo := &MockSalesRepository{
		lines: []domain.SaleLine{
			{POSItemID: strPtr("marg-1"), Quantity: 2},
			{POSItemID: strPtr("marg-1"), Quantity: 3},
			{POSItemID: strPtr("old-fashioned"), Quantity: 1},
			{POSItemID: nil, Quantity: 10}, // no POS id - ignored
		},
	}
	agg := NewAggregator(repo)

	totals, err := agg.AggregateSince(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 5.0, totals["marg-1"])
	assert.Equal(t, 1.0, totals["old-fashioned"])
	assert.Len(t, totals, 2)
}

func TestAggregateSincePaginatesExhaustively(t *testing.T) {
	// 2500 lines across the same item: 3 pages (1000, 1000, 500)
	var lines []domain.SaleLine
	for i := 0; i < 2500; i++ {
		lines = append(lines, domain.SaleLine{POSItemID: strPtr(fmt.Sprintf("item-%d", i%7)), Quantity: 1})
	}
	repo := &MockSalesRepository{lines: lines}
	agg := NewAggregator(repo)

	totals, err := agg.AggregateSince(context.Background(), time.Now())
	require.NoError(t, err)

	var sum float64
	for _, q := range totals {
		sum += q
	}
	assert.Equal(t, 2500.0, sum)
	assert.Equal(t, []int{0, 1000, 2000}, repo.gotOffsets)
}

func TestAggregateSinceExactPageBoundary(t *testing.T) {
	// Exactly one full page: a follow-up fetch must confirm end-of-data
	var lines []domain.SaleLine
	for i := 0; i < PageSize; i++ {
		lines = append(lines, domain.SaleLine{POSItemID: strPtr("beer"), Quantity: 1})
	}
	repo := &MockSalesRepository{lines: lines}
	agg := NewAggregator(repo)

	totals, err := agg.AggregateSince(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, float64(PageSize), totals["beer"])
	assert.Equal(t, []int{0, PageSize}, repo.gotOffsets)
}

func TestAggregateSinceTruncatesToCalendarDate(t *testing.T) {
	repo := &MockSalesRepository{}
	agg := NewAggregator(repo)

	countedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	_, err := agg.AggregateSince(context.Background(), countedAt)
	require.NoError(t, err)

	require.Len(t, repo.gotSince, 1)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), repo.gotSince[0])
}

func TestAggregateSincePropagatesRepositoryError(t *testing.T) {
	repo := &MockSalesRepository{shouldFail: true, failErr: errors.New("connection refused")}
	agg := NewAggregator(repo)

	_, err := agg.AggregateSince(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get sale lines")
}
