package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
)

var (
	// ErrInvalidTransaction is returned when a create request is missing a
	// numeric amount or a non-empty description.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrTransactionNotFound is returned when an update or delete matches no
	// stored transaction.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionWriter defines methods for writing transactions.
type TransactionWriter interface {
	Save(ctx context.Context, create models.TransactionCreate) (models.TransactionDB, error)                 // Inserts a new transaction
	Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (models.TransactionDB, error)   // Merges fields into an existing transaction
	Delete(ctx context.Context, id uuid.UUID) error                                                          // Removes a transaction
}

// TransactionReader defines methods for reading the ledger.
type TransactionReader interface {
	List(ctx context.Context) ([]models.TransactionDB, error) // Returns all transactions, newest date first
}

// MutationNotifier is told about committed mutations so viewers can be
// brought up to date.
type MutationNotifier interface {
	NotifyMutated(ctx context.Context)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService applies record-level mutations to the transaction store and
// keeps connected viewers synchronized. The notifier is invoked exactly once
// per successful mutation, strictly after the store has acknowledged the
// write; a failed write never triggers a notification.
type LedgerService struct {
	writeRepo   TransactionWriter
	readRepo    TransactionReader
	notifier    MutationNotifier
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	writeRepo TransactionWriter,
	readRepo TransactionReader,
	notifier MutationNotifier,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// publishMutation publishes a mutation event to Kafka.
func (s *LedgerService) publishMutation(ctx context.Context, operation string, transactionID string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", transactionID)
		return
	}

	event := models.MutationEvent{
		EventID:       uuid.NewString(),
		Operation:     operation,
		TransactionID: transactionID,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal mutation event for Kafka", "transaction_id", transactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(transactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish mutation event to Kafka", "transaction_id", transactionID, "error", err)
	} else {
		logger.Log.Infow("Mutation event published to Kafka", "transaction_id", transactionID, "operation", operation)
	}
}

// Create validates and stores a new transaction, then notifies viewers.
// The amount is required and always stored numeric; the description is
// required non-empty after trimming; the date defaults to the current time.
func (s *LedgerService) Create(ctx context.Context, amount *float64, description string, date *time.Time) (models.TransactionDB, error) {
	if amount == nil {
		return models.TransactionDB{}, fmt.Errorf("%w: amount is required", ErrInvalidTransaction)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.TransactionDB{}, fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}

	when := time.Now()
	if date != nil {
		when = *date
	}

	txn, err := s.writeRepo.Save(ctx, models.TransactionCreate{
		Amount:      *amount,
		Description: description,
		Date:        when,
	})
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "amount", *amount, "error", err)
		return models.TransactionDB{}, err
	}

	s.publishMutation(ctx, "create", txn.TransactionID.String())
	s.notifier.NotifyMutated(ctx)

	return txn, nil
}

// Update merges the supplied fields into an existing transaction, then
// notifies viewers. Omitted fields are left unchanged.
func (s *LedgerService) Update(ctx context.Context, id uuid.UUID, amount *float64, description *string, date *time.Time) (models.TransactionDB, error) {
	txn, err := s.writeRepo.Update(ctx, id, models.TransactionPatch{
		Amount:      amount,
		Description: description,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TransactionDB{}, ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to update transaction", "transaction_id", id, "error", err)
		return models.TransactionDB{}, err
	}

	s.publishMutation(ctx, "update", txn.TransactionID.String())
	s.notifier.NotifyMutated(ctx)

	return txn, nil
}

// Delete removes a transaction by identifier, then notifies viewers.
// Deletion is permanent and immediate.
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to delete transaction", "transaction_id", id, "error", err)
		return err
	}

	s.publishMutation(ctx, "delete", id.String())
	s.notifier.NotifyMutated(ctx)

	return nil
}

// Snapshot returns the full ordered ledger, surfacing any store failure.
func (s *LedgerService) Snapshot(ctx context.Context) ([]models.TransactionDB, error) {
	return s.readRepo.List(ctx)
}

// SnapshotOrEmpty returns the full ordered ledger, degrading a store failure
// to an empty ledger. The second return value reports whether the result is
// degraded, so callers can tell a failed read from a genuinely empty ledger.
func (s *LedgerService) SnapshotOrEmpty(ctx context.Context) ([]models.TransactionDB, bool) {
	txns, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Warnw("snapshot read failed, serving empty ledger", "error", err)
		return []models.TransactionDB{}, true
	}
	if txns == nil {
		txns = []models.TransactionDB{}
	}
	return txns, false
}
