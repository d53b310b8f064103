package models

import "time"

// ClientDB represents a client record in the database
type ClientDB struct {
	UserID    string    `json:"user_id" db:"user_id"`       // Opaque client identifier
	Name      string    `json:"name" db:"name"`             // Client full name
	Email     string    `json:"email" db:"email"`           // Client email
	Phone     *string   `json:"phone,omitempty" db:"phone"` // Optional phone number
	Balance   float64   `json:"balance" db:"balance"`       // Current cash balance, never negative
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
