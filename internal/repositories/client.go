package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

// ClientReadRepository handles client read operations
type ClientReadRepository struct {
	db *sqlx.DB
}

func NewClientReadRepository(db *sqlx.DB) *ClientReadRepository {
	return &ClientReadRepository{db: db}
}

// GetByUserID retrieves a client by its identifier.
// Returns (nil, nil) when the client does not exist.
func (r *ClientReadRepository) GetByUserID(ctx context.Context, userID string) (*models.ClientDB, error) {
	const query = `
		SELECT user_id, name, email, phone, balance, created_at, updated_at
		FROM clients
		WHERE user_id = $1
	`

	var client models.ClientDB
	err := r.db.GetContext(ctx, &client, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", client,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &client, nil
}

// ClientWriteRepository handles client write operations
type ClientWriteRepository struct {
	db *sqlx.DB
}

func NewClientWriteRepository(db *sqlx.DB) *ClientWriteRepository {
	return &ClientWriteRepository{db: db}
}

// Save inserts a new client record.
func (r *ClientWriteRepository) Save(ctx context.Context, client models.ClientDB) error {
	query := `
		INSERT INTO clients (user_id, name, email, phone, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{client.UserID, client.Name, client.Email, client.Phone, client.Balance}

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

// UpdateBalance persists a new balance for the client.
func (r *ClientWriteRepository) UpdateBalance(ctx context.Context, userID string, newBalance float64) error {
	query := `
		UPDATE clients
		SET balance = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, newBalance}

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
