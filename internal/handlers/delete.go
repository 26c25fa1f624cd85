package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/services"
)

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteTransactionResponse represents a successful delete response
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct {
	// Success message
	// default: Transaction deleted successfully
	Message string `json:"message"`
}

// NewDeleteTransactionHandler returns an HTTP handler for deleting a transaction.
// @Summary Delete transaction
// @Description Removes a transaction permanently and pushes the updated ledger to every connected viewer.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} handlers.DeleteTransactionResponse "Transaction deleted"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /api/transactions/{id} [delete]
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Warnw("delete with malformed transaction id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to delete transaction", "transaction_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteTransactionResponse{Message: "Transaction deleted successfully"})
	}
}
