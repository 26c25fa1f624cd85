package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
)

// ListSnapshotReader defines the interface that the service must implement.
type ListSnapshotReader interface {
	SnapshotOrEmpty(ctx context.Context) ([]models.TransactionDB, bool)
}

// TransactionErrorResponse represents an error response
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler listing all transactions.
// @Summary List transactions
// @Description Returns the full ledger ordered by transaction date, most recent first. Serves an empty list when the store cannot be reached.
// @Tags transactions
// @Produce json
// @Success 200 {array} models.TransactionDB "Ordered transactions"
// @Router /api/transactions [get]
func NewListTransactionsHandler(svc ListSnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txns, degraded := svc.SnapshotOrEmpty(r.Context())
		if degraded {
			logger.Log.Warnw("listing transactions in degraded mode")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}
