package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
	"github.com/ykarpenko/ledger-sync/internal/services"
)

// TransactionUpdater defines the interface that the service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, id uuid.UUID, amount *float64, description *string, date *time.Time) (models.TransactionDB, error)
}

// UpdateTransactionRequest represents the JSON body for updating a transaction.
// Omitted fields are left unchanged.
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	// Amount, accepted as a number or a numeric string
	// default: 100.0
	Amount *models.Amount `json:"amount"`

	// Description
	// default: rent
	Description *string `json:"description"`

	// Transaction date
	// default: 2024-01-01
	Date *models.Date `json:"date"`
}

// UpdateTransactionResponse represents a successful update response
// swagger:model UpdateTransactionResponse
type UpdateTransactionResponse struct {
	// Success message
	// default: Transaction updated successfully
	Message string `json:"message"`

	// The transaction after the update
	Transaction models.TransactionDB `json:"transaction"`
}

// NewUpdateTransactionHandler returns an HTTP handler for updating a transaction.
// @Summary Update transaction
// @Description Merges the supplied fields into an existing transaction and pushes the updated ledger to every connected viewer.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body handlers.UpdateTransactionRequest true "Update Request"
// @Success 200 {object} handlers.UpdateTransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /api/transactions/{id} [put]
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		// A malformed identifier can never match a stored transaction.
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Warnw("update with malformed transaction id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		var req UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode update request", "transaction_id", id, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		var amount *float64
		if req.Amount != nil {
			a := req.Amount.Float64()
			amount = &a
		}
		var date *time.Time
		if req.Date != nil {
			d := req.Date.Time()
			date = &d
		}

		txn, err := svc.Update(ctx, id, amount, req.Description, date)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to update transaction", "transaction_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateTransactionResponse{
			Message:     "Transaction updated successfully",
			Transaction: txn,
		})
	}
}
