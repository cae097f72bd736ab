package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BarSentry_Go/internal/domain"
	"github.com/osse101/BarSentry_Go/internal/inventory"
	"github.com/osse101/BarSentry_Go/internal/logger"
)

// RecalculateResponse summarizes one recalculation pass
type RecalculateResponse struct {
	Updated int `json:"updated"`
	Alerts  int `json:"alerts"`
	Failed  int `json:"failed"`
}

// HandleRecalculate triggers a full expected-quantity recalculation pass
// @Summary Recalculate expected inventory
// @Description Recomputes expected remaining quantity for every counted ingredient from sales since its last count
// @Tags inventory
// @Produce json
// @Success 200 {object} RecalculateResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/recalculate [post]
func HandleRecalculate(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.Recalculate(r.Context())
		if err != nil {
			respondServiceError(w, log, "Recalculate", err)
			return
		}

		log.Info("Recalculation triggered via API", "updated", result.Updated, "alerts", result.Alerts, "failed", result.Failed)

		respondJSON(w, http.StatusOK, RecalculateResponse{
			Updated: result.Updated,
			Alerts:  result.Alerts,
			Failed:  result.Failed,
		})
	}
}

// IngredientListResponse wraps the ingredient collection
type IngredientListResponse struct {
	Ingredients []domain.Ingredient `json:"ingredients"`
	Count       int                 `json:"count"`
}

// HandleListIngredients returns every tracked ingredient with its expected quantity
// @Summary List ingredients
// @Description List all tracked ingredients with counts and expected quantities
// @Tags inventory
// @Produce json
// @Success 200 {object} IngredientListResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleListIngredients(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ingredients, err := svc.ListIngredients(r.Context())
		if err != nil {
			respondServiceError(w, log, "ListIngredients", err)
			return
		}

		respondJSON(w, http.StatusOK, IngredientListResponse{
			Ingredients: ingredients,
			Count:       len(ingredients),
		})
	}
}

// HandleGetIngredient returns a single ingredient by ID
// @Summary Get ingredient
// @Description Get one ingredient with its latest count and expected quantity
// @Tags inventory
// @Produce json
// @Param ingredientID path string true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/{ingredientID} [get]
func HandleGetIngredient(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "ingredientID")
		if id == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingIngredient)
			return
		}

		ingredient, err := svc.GetIngredient(r.Context(), id)
		if err != nil {
			respondServiceError(w, log, "GetIngredient", err)
			return
		}

		respondJSON(w, http.StatusOK, ingredient)
	}
}

// RecordCountRequest is a manual physical count submission
type RecordCountRequest struct {
	Quantity  float64    `json:"quantity" validate:"gte=0"`
	CountedAt *time.Time `json:"counted_at,omitempty"`
}

// HandleRecordCount stores a manual physical count for an ingredient
// @Summary Record physical count
// @Description Record a physical count; the count becomes the baseline for future recalculation
// @Tags inventory
// @Accept json
// @Produce json
// @Param ingredientID path string true "Ingredient ID"
// @Param request body RecordCountRequest true "Count details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/{ingredientID}/count [post]
func HandleRecordCount(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "ingredientID")
		if id == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingIngredient)
			return
		}

		var req RecordCountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode record count request", "error", err)
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

		countedAt := time.Now().UTC()
		if req.CountedAt != nil {
			countedAt = *req.CountedAt
		}

		if err := svc.RecordCount(r.Context(), id, req.Quantity, countedAt); err != nil {
			respondServiceError(w, log, "RecordCount", err)
			return
		}

		log.Info("Count recorded via API", "ingredientID", id, "quantity", req.Quantity)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCountRecordedSuccess})
	}
}
