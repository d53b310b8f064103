package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

// CancelExecutor defines the interface that the service must implement.
type CancelExecutor interface {
	Execute(ctx context.Context, userID, fundID, transactionType, notificationType string) (*models.TransactionResult, error)
}

// NewCancelHandler returns an HTTP handler for cancelling a fund subscription.
// @Summary Cancel a fund subscription
// @Description Credits the fund minimum amount back to the client balance, deletes the subscription relation, and appends a transaction record. Optionally notifies the client by email or sms.
// @Tags funds
// @Accept json
// @Produce json
// @Param request body handlers.FundTransactionRequest true "Cancel Request"
// @Success 200 {object} handlers.FundTransactionResponse "Cancellation performed"
// @Failure 400 {object} handlers.FundTransactionErrorResponse "Validation or state error"
// @Failure 500 {object} handlers.FundTransactionErrorResponse "Dependency failure"
// @Router /funds/cancel [post]
func NewCancelHandler(svc CancelExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req FundTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode cancel request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.TransactionType != models.TransactionTypeCancel {
			logger.Log.Warnw("invalid transaction type for cancel endpoint", "transaction_type", req.TransactionType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: "Invalid transaction type for this endpoint"})
			return
		}
		if _, ok := validNotificationTypes[req.NotificationType]; !ok {
			logger.Log.Warnw("invalid notification type", "notification_type", req.NotificationType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: "Invalid notification type"})
			return
		}

		result, err := svc.Execute(ctx, req.UserID, req.IDFund, req.TransactionType, req.NotificationType)
		if err != nil {
			writeTransactionError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FundTransactionResponse{
			TransactionID:   result.TransactionID,
			UserID:          result.UserID,
			IDFund:          result.IDFund,
			TransactionType: result.TransactionType,
			NewBalance:      result.NewBalance,
			Timestamp:       result.Timestamp,
		})
	}
}
