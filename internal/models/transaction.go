package models

import "time"

// Supported transaction types
const (
	TransactionTypeSubscribe = "subscribe"
	TransactionTypeCancel    = "cancel"
)

// Supported notification channels
const (
	NotificationTypeEmail = "email"
	NotificationTypeSMS   = "sms"
)

// TransactionDB represents one append-only transaction history row.
// Rows are immutable once written, except for the Notification flag which is
// flipped to true after a successful notification dispatch.
type TransactionDB struct {
	TransactionID   string    `json:"transaction_id" db:"transaction_id"`   // Unique transaction identifier
	UserID          string    `json:"user_id" db:"user_id"`                 // Client who performed the transaction
	IDFund          string    `json:"id_fund" db:"id_fund"`                 // Fund the transaction applies to
	TransactionType string    `json:"transaction_type" db:"transaction_type"` // "subscribe" or "cancel"
	Amount          float64   `json:"amount" db:"amount"`                   // Fund minimum amount at transaction time
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`             // UTC instant of creation
	Notification    bool      `json:"notification" db:"notification"`       // Whether a notification was dispatched
}

// TransactionResult is what the orchestrator returns to the caller after a
// successful subscribe or cancel.
type TransactionResult struct {
	TransactionID   string    `json:"transaction_id"`
	UserID          string    `json:"user_id"`
	IDFund          string    `json:"id_fund"`
	TransactionType string    `json:"transaction_type"`
	NewBalance      float64   `json:"new_balance"`
	Timestamp       time.Time `json:"timestamp"`
}
