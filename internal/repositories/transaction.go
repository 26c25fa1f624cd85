package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
)

// TransactionWriteRepository handles transaction write operations.
// Every operation is a single atomic statement; an unmatched identifier
// surfaces as sql.ErrNoRows.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save inserts a new transaction. The store assigns the identifier and the
// created_at/updated_at timestamps; the stored row is returned.
func (r *TransactionWriteRepository) Save(ctx context.Context, create models.TransactionCreate) (models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (transaction_id, amount, description, date, created_at, updated_at)
		VALUES (uuid_generate_v4(), $1, $2, $3, NOW(), NOW())
		RETURNING transaction_id, amount, description, date, created_at, updated_at
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.db, &txn, query, create.Amount, create.Description, create.Date)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{create.Amount, create.Description, create.Date},
		"error", err,
	)

	return txn, err
}

// Update merges the supplied fields into an existing transaction in a single
// statement. Nil patch fields keep the stored value. Returns sql.ErrNoRows
// when no row matched the identifier.
func (r *TransactionWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.TransactionPatch) (models.TransactionDB, error) {
	query := `
		UPDATE transactions
		SET amount = COALESCE($2, amount),
		    description = COALESCE($3, description),
		    date = COALESCE($4, date),
		    updated_at = NOW()
		WHERE transaction_id = $1
		RETURNING transaction_id, amount, description, date, created_at, updated_at
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.db, &txn, query, id, patch.Amount, patch.Description, patch.Date)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id, patch.Amount, patch.Description, patch.Date},
		"error", err,
	)

	return txn, err
}

// Delete removes a transaction by identifier. Returns sql.ErrNoRows when no
// row matched.
func (r *TransactionWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1
		RETURNING transaction_id
	`

	var deleted uuid.UUID
	err := sqlx.GetContext(ctx, r.db, &deleted, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}

// TransactionReadRepository handles transaction read operations.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns the full ledger ordered by transaction date, most recent
// first. The store is queried fresh on every call.
func (r *TransactionReadRepository) List(ctx context.Context) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, amount, description, date, created_at, updated_at
		FROM transactions
		ORDER BY date DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(txns),
		"error", err,
	)

	return txns, err
}
