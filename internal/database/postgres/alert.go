package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/BarSentry_Go/internal/domain"
)

// AlertRepository implements the alert repository for PostgreSQL.
// A partial unique index enforces at most one unresolved alert per
// ingredient.
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository creates a new AlertRepository
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetUnresolvedAlert retrieves the unresolved alert for an ingredient, or
// nil when the ingredient has none
func (r *AlertRepository) GetUnresolvedAlert(ctx context.Context, ingredientID string) (*domain.InventoryAlert, error) {
	query := `
		SELECT id, ingredient_id, alert_type, threshold, message, resolved, resolved_at, created_at
		FROM inventory_alerts
		WHERE ingredient_id = $1 AND NOT resolved
	`

	var alert domain.InventoryAlert
	err := r.db.QueryRow(ctx, query, ingredientID).Scan(
		&alert.ID,
		&alert.IngredientID,
		&alert.AlertType,
		&alert.Threshold,
		&alert.Message,
		&alert.Resolved,
		&alert.ResolvedAt,
		&alert.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAlert, err)
	}

	return &alert, nil
}

// InsertAlert creates a new alert and returns its identifier
func (r *AlertRepository) InsertAlert(ctx context.Context, alert *domain.InventoryAlert) (string, error) {
	query := `
		INSERT INTO inventory_alerts (id, ingredient_id, alert_type, threshold, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	id := alert.ID
	if id == "" {
		id = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, query, id, alert.IngredientID, alert.AlertType, alert.Threshold, alert.Message).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return "", fmt.Errorf("%w: ingredient %s", domain.ErrDuplicateAlert, alert.IngredientID)
		}
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToInsertAlert, err)
	}

	return id, nil
}

// ResolveAlert marks an alert as resolved
func (r *AlertRepository) ResolveAlert(ctx context.Context, alertID string) error {
	query := `
		UPDATE inventory_alerts
		SET resolved = TRUE, resolved_at = NOW()
		WHERE id = $1 AND NOT resolved
	`

	result, err := r.db.Exec(ctx, query, alertID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToResolveAlert, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}

	return nil
}

// ListAlerts retrieves alerts newest first, optionally filtered by resolved state
func (r *AlertRepository) ListAlerts(ctx context.Context, resolved *bool) ([]domain.InventoryAlert, error) {
	query := `
		SELECT id, ingredient_id, alert_type, threshold, message, resolved, resolved_at, created_at
		FROM inventory_alerts
		WHERE ($1::boolean IS NULL OR resolved = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, resolved)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAlerts, err)
	}
	defer rows.Close()

	var alerts []domain.InventoryAlert
	for rows.Next() {
		var alert domain.InventoryAlert
		err := rows.Scan(
			&alert.ID,
			&alert.IngredientID,
			&alert.AlertType,
			&alert.Threshold,
			&alert.Message,
			&alert.Resolved,
			&alert.ResolvedAt,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return alerts, nil
}
