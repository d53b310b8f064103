package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/services"
)

// SubscribeExecutor defines the interface that the service must implement.
type SubscribeExecutor interface {
	Execute(ctx context.Context, userID, fundID, transactionType, notificationType string) (*models.TransactionResult, error)
}

// FundTransactionRequest represents the JSON body for subscribe/cancel
// swagger:model FundTransactionRequest
type FundTransactionRequest struct {
	// Client identifier
	// required: true
	// default: user123
	UserID string `json:"user_id"`

	// Fund identifier
	// required: true
	// default: fund456
	IDFund string `json:"id_fund"`

	// Transaction type, must match the endpoint
	// required: true
	// default: subscribe
	TransactionType string `json:"transaction_type"`

	// Optional notification channel: email or sms
	// default: email
	NotificationType string `json:"notification_type,omitempty"`
}

// FundTransactionResponse represents a successful subscribe/cancel response
// swagger:model FundTransactionResponse
type FundTransactionResponse struct {
	// Generated transaction identifier
	TransactionID string `json:"transaction_id"`

	// Client identifier
	UserID string `json:"user_id"`

	// Fund identifier
	IDFund string `json:"id_fund"`

	// Transaction type performed
	TransactionType string `json:"transaction_type"`

	// Client balance after the transaction
	NewBalance float64 `json:"new_balance"`

	// UTC instant of the transaction, ISO-8601
	Timestamp time.Time `json:"timestamp"`
}

// FundTransactionErrorResponse represents an error response for subscribe/cancel
// swagger:model FundTransactionErrorResponse
type FundTransactionErrorResponse struct {
	// Error message
	// default: user is already subscribed to this fund
	Error string `json:"error"`
}

// validNotificationTypes lists the accepted notification channels; empty means none.
var validNotificationTypes = map[string]struct{}{
	"":                           {},
	models.NotificationTypeEmail: {},
	models.NotificationTypeSMS:   {},
}

// NewSubscribeHandler returns an HTTP handler for subscribing a client to a fund.
// @Summary Subscribe to a fund
// @Description Debits the fund minimum amount from the client balance, creates the subscription relation, and appends a transaction record. Optionally notifies the client by email or sms.
// @Tags funds
// @Accept json
// @Produce json
// @Param request body handlers.FundTransactionRequest true "Subscribe Request"
// @Success 200 {object} handlers.FundTransactionResponse "Subscription performed"
// @Failure 400 {object} handlers.FundTransactionErrorResponse "Validation or state error"
// @Failure 500 {object} handlers.FundTransactionErrorResponse "Dependency failure"
// @Router /funds/subscribe [post]
func NewSubscribeHandler(svc SubscribeExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req FundTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode subscribe request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.TransactionType != models.TransactionTypeSubscribe {
			logger.Log.Warnw("invalid transaction type for subscribe endpoint", "transaction_type", req.TransactionType)
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

// writeTransactionError maps service errors onto HTTP statuses:
// validation/state errors are the client's fault, everything else is a
// dependency failure.
func writeTransactionError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrClientNotFound,
		services.ErrFundNotFound,
		services.ErrAlreadySubscribed,
		services.ErrNotSubscribed,
		services.ErrInsufficientBalance,
		services.ErrUnsupportedTransactionType:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(FundTransactionErrorResponse{Error: "Internal server error"})
	}
}
