package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/BarSentry_Go/internal/domain"
)

// SalesRepository implements the sales repository for PostgreSQL
type SalesRepository struct {
	db *pgxpool.Pool
}

// NewSalesRepository creates a new SalesRepository
func NewSalesRepository(db *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{db: db}
}

// GetSaleLinesSince retrieves one page of sale lines dated on or after the
// given calendar date. Lines with no POS item identifier are excluded; they
// can never match a recipe.
func (r *SalesRepository) GetSaleLinesSince(ctx context.Context, since time.Time, limit, offset int) ([]domain.SaleLine, error) {
	query := `
		SELECT id, sale_date, pos_item_id, item_name, quantity, created_at
		FROM sale_lines
		WHERE sale_date >= $1::date AND pos_item_id IS NOT NULL
		ORDER BY sale_date, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, since, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySaleLines, err)
	}
	defer rows.Close()

	var lines []domain.SaleLine
	for rows.Next() {
		var line domain.SaleLine
		err := rows.Scan(
			&line.ID,
			&line.Date,
			&line.POSItemID,
			&line.ItemName,
			&line.Quantity,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lines, nil
}

// InsertSaleLines stores a batch of sale lines in a single transaction and
// returns the number of rows written
func (r *SalesRepository) InsertSaleLines(ctx context.Context, lines []domain.SaleLine) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO sale_lines (id, sale_date, pos_item_id, item_name, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, line := range lines {
		id := line.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.Exec(ctx, query, id, line.Date, line.POSItemID, line.ItemName, line.Quantity); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertSaleLines, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	return len(lines), nil
}
