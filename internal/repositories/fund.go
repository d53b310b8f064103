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

// FundReadRepository handles fund read operations.
// Funds are read-only from the service's perspective.
type FundReadRepository struct {
	db *sqlx.DB
}

func NewFundReadRepository(db *sqlx.DB) *FundReadRepository {
	return &FundReadRepository{db: db}
}

// GetByID retrieves a fund by its identifier.
// Returns (nil, nil) when the fund does not exist.
func (r *FundReadRepository) GetByID(ctx context.Context, fundID string) (*models.FundDB, error) {
	const query = `
		SELECT id_fund, name, minimum_amount, category
		FROM funds
		WHERE id_fund = $1
	`

	var fund models.FundDB
	err := r.db.GetContext(ctx, &fund, query, fundID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fundID},
		"result", fund,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &fund, nil
}
