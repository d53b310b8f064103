package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

// TransactionWriteRepository handles the append-only transaction history writes
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save appends one transaction record. Records are never updated afterwards,
// except for the notification flag via SetNotified.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, id_fund, transaction_type, amount, timestamp, notification)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{txn.TransactionID, txn.UserID, txn.IDFund, txn.TransactionType, txn.Amount, txn.Timestamp, txn.Notification}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SetNotified flips the notification flag of an already stored record.
func (r *TransactionWriteRepository) SetNotified(ctx context.Context, transactionID string, notified bool) error {
	query := `
		UPDATE transactions
		SET notification = $2
		WHERE transaction_id = $1
	`
	args := []any{transactionID, notified}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TransactionReadRepository handles transaction history reads
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListAll returns the whole transaction history, newest first.
// Rows that cannot be scanned are skipped instead of failing the listing.
func (r *TransactionReadRepository) ListAll(ctx context.Context) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, id_fund, transaction_type, amount, timestamp, notification
		FROM transactions
		ORDER BY timestamp DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.TransactionDB, 0)
	for rows.Next() {
		var txn models.TransactionDB
		if err := rows.StructScan(&txn); err != nil {
			logger.Log.Warnw("skipping unreadable transaction row", "error", err)
			continue
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
