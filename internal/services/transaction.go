package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

var (
	// ErrClientNotFound is returned when the requested client does not exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrFundNotFound is returned when the requested fund does not exist.
	ErrFundNotFound = errors.New("fund not found")
	// ErrAlreadySubscribed is returned on subscribe when the relation already exists.
	ErrAlreadySubscribed = errors.New("user is already subscribed to this fund")
	// ErrNotSubscribed is returned on cancel when the relation does not exist.
	ErrNotSubscribed = errors.New("user is not subscribed to this fund")
	// ErrInsufficientBalance is returned when the balance does not cover the fund minimum.
	ErrInsufficientBalance = errors.New("insufficient balance to subscribe to this fund")
	// ErrUnsupportedTransactionType is returned for any type other than subscribe/cancel.
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
)

// ClientReader defines read-only operations for clients.
type ClientReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.ClientDB, error) // Returns nil when absent
}

// ClientBalanceWriter persists a new client balance.
type ClientBalanceWriter interface {
	UpdateBalance(ctx context.Context, userID string, newBalance float64) error
}

// FundReader defines read-only operations for funds.
type FundReader interface {
	GetByID(ctx context.Context, fundID string) (*models.FundDB, error) // Returns nil when absent
}

// SubscriptionStore manages the (user, fund) subscription relation.
type SubscriptionStore interface {
	Exists(ctx context.Context, userID, fundID string) (bool, error)
	Create(ctx context.Context, userID, fundID string) error
	Delete(ctx context.Context, userID, fundID string) error
}

// TransactionWriter appends transaction records and updates their notification flag.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) error
	SetNotified(ctx context.Context, transactionID string, notified bool) error
}

// Notifier delivers a best-effort transaction notification.
// The boolean reports whether a message was actually dispatched.
type Notifier interface {
	Notify(ctx context.Context, userID, fundID, transactionType, notificationType string) (bool, error)
}

// TransactionService orchestrates a subscribe/cancel operation end-to-end:
// validation, balance mutation, relation change, history append, and the
// best-effort notification.
//
// The relation change, balance update, and history append hit three
// independent stores with no surrounding transaction; a failure partway
// through leaves the earlier writes in place. This mirrors the behavior of
// the production system and is deliberately not compensated here.
type TransactionService struct {
	clientReader  ClientReader
	balanceWriter ClientBalanceWriter
	fundReader    FundReader
	subscriptions SubscriptionStore
	txnWriter     TransactionWriter
	notifier      Notifier
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	clientReader ClientReader,
	balanceWriter ClientBalanceWriter,
	fundReader FundReader,
	subscriptions SubscriptionStore,
	txnWriter TransactionWriter,
	notifier Notifier,
) *TransactionService {
	return &TransactionService{
		clientReader:  clientReader,
		balanceWriter: balanceWriter,
		fundReader:    fundReader,
		subscriptions: subscriptions,
		txnWriter:     txnWriter,
		notifier:      notifier,
	}
}

// Execute performs one subscribe or cancel operation for the given client and
// fund and returns the resulting transaction. notificationType may be empty,
// "email", or "sms"; notification failures never fail the operation.
func (s *TransactionService) Execute(ctx context.Context, userID, fundID, transactionType, notificationType string) (*models.TransactionResult, error) {
	client, err := s.clientReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get client", "user_id", userID, "error", err)
		return nil, err
	}
	if client == nil {
		logger.Log.Warnw("client not found", "user_id", userID)
		return nil, ErrClientNotFound
	}

	fund, err := s.fundReader.GetByID(ctx, fundID)
	if err != nil {
		logger.Log.Errorw("failed to get fund", "id_fund", fundID, "error", err)
		return nil, err
	}
	if fund == nil {
		logger.Log.Warnw("fund not found", "id_fund", fundID)
		return nil, ErrFundNotFound
	}

	subscribed, err := s.subscriptions.Exists(ctx, userID, fundID)
	if err != nil {
		logger.Log.Errorw("failed to check subscription", "user_id", userID, "id_fund", fundID, "error", err)
		return nil, err
	}

	var newBalance float64

	switch transactionType {
	case models.TransactionTypeSubscribe:
		if subscribed {
			logger.Log.Warnw("user already subscribed", "user_id", userID, "id_fund", fundID)
			return nil, ErrAlreadySubscribed
		}
		if client.Balance < fund.MinimumAmount {
			logger.Log.Warnw("insufficient balance",
				"user_id", userID, "id_fund", fundID,
				"balance", client.Balance, "minimum_amount", fund.MinimumAmount)
			return nil, ErrInsufficientBalance
		}
		newBalance = client.Balance - fund.MinimumAmount
		if err := s.subscriptions.Create(ctx, userID, fundID); err != nil {
			logger.Log.Errorw("failed to create subscription", "user_id", userID, "id_fund", fundID, "error", err)
			return nil, err
		}

	case models.TransactionTypeCancel:
		if !subscribed {
			logger.Log.Warnw("user not subscribed", "user_id", userID, "id_fund", fundID)
			return nil, ErrNotSubscribed
		}
		newBalance = client.Balance + fund.MinimumAmount
		if err := s.subscriptions.Delete(ctx, userID, fundID); err != nil {
			logger.Log.Errorw("failed to delete subscription", "user_id", userID, "id_fund", fundID, "error", err)
			return nil, err
		}

	default:
		logger.Log.Errorw("unsupported transaction type", "transaction_type", transactionType)
		return nil, ErrUnsupportedTransactionType
	}

	// The relation change above is not rolled back if this write fails.
	if err := s.balanceWriter.UpdateBalance(ctx, userID, newBalance); err != nil {
		logger.Log.Errorw("failed to update client balance", "user_id", userID, "new_balance", newBalance, "error", err)
		return nil, err
	}

	txn := models.TransactionDB{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		IDFund:          fundID,
		TransactionType: transactionType,
		Amount:          fund.MinimumAmount,
		Timestamp:       time.Now().UTC(),
		Notification:    false,
	}
	if err := s.txnWriter.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, err
	}

	// Best effort from here on: the transaction is already recorded.
	sent, err := s.notifier.Notify(ctx, userID, fundID, transactionType, notificationType)
	if err != nil {
		logger.Log.Errorw("failed to send notification",
			"transaction_id", txn.TransactionID, "notification_type", notificationType, "error", err)
	} else if sent {
		if err := s.txnWriter.SetNotified(ctx, txn.TransactionID, true); err != nil {
			logger.Log.Errorw("failed to update notification flag",
				"transaction_id", txn.TransactionID, "error", err)
		}
	}

	return &models.TransactionResult{
		TransactionID:   txn.TransactionID,
		UserID:          userID,
		IDFund:          fundID,
		TransactionType: transactionType,
		NewBalance:      newBalance,
		Timestamp:       txn.Timestamp,
	}, nil
}
