package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded sale. Records are immutable once
// created; they are never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"id"`           // Primary Key (UUID)
	CustomerName  string          `json:"customerName"` // Non-blank after trimming
	Amount        decimal.Decimal `json:"amount"`       // Positive value; Precise decimal type
	CurrencyCode  string          `json:"currency"`     // One of the supported currency codes
	CreatedAt     time.Time       `json:"createdAt"`    // Assigned at creation
}
