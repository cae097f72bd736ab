package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/BarSentry_Go/internal/alert"
	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
)

// AlertListResponse wraps the alert collection
type AlertListResponse struct {
	Alerts []domain.InventoryAlert `json:"alerts"`
	Count  int                     `json:"count"`
}

// HandleListAlerts returns restock alerts, optionally filtered by resolved state
// @Summary List alerts
// @Description List restock alerts, newest first. Pass resolved=true/false to filter.
// @Tags alerts
// @Produce json
// @Param resolved query bool false "Filter by resolved state"
// @Success 200 {object} AlertListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts [get]
func HandleListAlerts(mgr alert.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var resolved *bool
		if raw := r.URL.Query().Get("resolved"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				log.Warn("Invalid resolved parameter", "value", raw)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidResolvedArg)
				return
			}
			resolved = &parsed
		}

		alerts, err := mgr.ListAlerts(r.Context(), resolved)
		if err != nil {
			respondServiceError(w, log, "ListAlerts", err)
			return
		}

		respondJSON(w, http.StatusOK, AlertListResponse{
			Alerts: alerts,
			Count:  len(alerts),
		})
	}
}
