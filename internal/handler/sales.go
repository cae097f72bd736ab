package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/logger"
	"github.com/osse101/BarSentry_Go/internal/sales"
)

// SaleLineRequest is one sold-item row in an import batch
type SaleLineRequest struct {
	Date      string  `json:"date" validate:"required"`
	POSItemID *string `json:"pos_item_id,omitempty"`
	ItemName  string  `json:"item_name,omitempty" validate:"max=255"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

// ImportSalesRequest is a batch of sale lines from the POS sync
type ImportSalesRequest struct {
	Lines []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ImportSalesResponse reports how many lines were stored
type ImportSalesResponse struct {
	Imported int `json:"imported"`
}

// HandleImportSales ingests a batch of sale lines
// @Summary Import sale lines
// @Description Store a batch of POS sale lines for usage aggregation
// @Tags sales
// @Accept json
// @Produce json
// @Param request body ImportSalesRequest true "Sale lines"
// @Success 200 {object} ImportSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/import [post]
func HandleImportSales(importer sales.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ImportSalesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode import sales request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		lines := make([]domain.SaleLine, 0, len(req.Lines))
		for _, lr := range req.Lines {
			date, err := time.Parse(time.DateOnly, lr.Date)
			if err != nil {
				log.Warn("Invalid sale date", "date", lr.Date)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			lines = append(lines, domain.SaleLine{
				Date:      date,
				POSItemID: lr.POSItemID,
				ItemName:  lr.ItemName,
				Quantity:  lr.Quantity,
			})
		}

		imported, err := importer.ImportLines(r.Context(), lines)
		if err != nil {
			respondServiceError(w, log, "ImportSales", err)
			return
		}

		log.Info("Sale lines imported via API", "count", imported)

		respondJSON(w, http.StatusOK, ImportSalesResponse{Imported: imported})
	}
}
