package models

// FundDB represents an investment fund row in the database
type FundDB struct {
	IDFund        string  `json:"id_fund" db:"id_fund"`               // Fund identifier
	Name          string  `json:"name" db:"name"`                     // Fund display name
	MinimumAmount float64 `json:"minimum_amount" db:"minimum_amount"` // Fixed amount per subscribe/cancel
	Category      string  `json:"category" db:"category"`             // Fund category (e.g., FPV, FIC)
}
