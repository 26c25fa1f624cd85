package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
	"github.com/ykarpenko/ledger-sync/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, amount *float64, description string, date *time.Time) (models.TransactionDB, error)
}

// CreateTransactionRequest represents the JSON body for creating a transaction
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Amount, accepted as a number or a numeric string
	// required: true
	// default: 100.0
	Amount *models.Amount `json:"amount"`

	// Description
	// required: true
	// default: rent
	Description string `json:"description"`

	// Transaction date; defaults to the current time when omitted
	// default: 2024-01-01
	Date *models.Date `json:"date"`
}

// CreateTransactionResponse represents a successful create response
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Success message
	// default: Transaction created successfully
	Message string `json:"message"`

	// The stored transaction, including its assigned identifier
	Transaction models.TransactionDB `json:"transaction"`
}

// NewCreateTransactionHandler returns an HTTP handler for creating a transaction.
// @Summary Create transaction
// @Description Stores a new transaction and pushes the updated ledger to every connected viewer.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Create Request"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction created"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid amount or description"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /api/transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create request", "error", err)
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

		txn, err := svc.Create(ctx, amount, req.Description, date)
		if err != nil {
			if errors.Is(err, services.ErrInvalidTransaction) {
				logger.Log.Warnw("invalid create request", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid amount or description"})
				return
			}
			logger.Log.Errorw("failed to create transaction", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTransactionResponse{
			Message:     "Transaction created successfully",
			Transaction: txn,
		})
	}
}
