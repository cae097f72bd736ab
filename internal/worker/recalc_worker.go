package worker

import (
	"context"
	"time"

	"github.com/osse101/BarSentry_Go/internal/inventory"
	"github.com/osse101/BarSentry_Go/internal/logger"
)

// RecalcJob runs one expected-quantity recalculation pass.
// Scheduled at a fixed interval so expected quantities track the POS sales
// feed without waiting for an operator to hit the API.
type RecalcJob struct {
	service inventory.Service
	timeout time.Duration
}

// NewRecalcJob creates a recalculation job with a per-pass timeout
func NewRecalcJob(service inventory.Service, timeout time.Duration) *RecalcJob {
	return &RecalcJob{service: service, timeout: timeout}
}

// Process implements the Job interface
func (j *RecalcJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info(LogMsgRecalcStarting)

	result, err := j.service.Recalculate(ctx)
	if err != nil {
		return err
	}

	log.Info(LogMsgRecalcCompleted, "updated", result.Updated, "alerts", result.Alerts, "failed", result.Failed)
	return nil
}
