package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

// TransactionLister defines the interface that the history reader must implement.
type TransactionLister interface {
	ListAll(ctx context.Context) ([]models.TransactionDB, error)
}

// HistoryErrorResponse represents an error response for the history endpoint
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Failed to fetch transaction history
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler listing all transactions, newest first.
// @Summary Transaction history
// @Description Returns every recorded subscribe/cancel transaction, ordered by timestamp descending.
// @Tags funds
// @Produce json
// @Success 200 {array} models.TransactionDB "Transaction records"
// @Failure 500 {object} handlers.HistoryErrorResponse "Dependency failure"
// @Router /funds/history [get]
func NewHistoryHandler(reader TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		transactions, err := reader.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch transaction history", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Failed to fetch transaction history"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(transactions)
	}
}
