package dto

import (
	"time"

	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new sale.
// Binding covers shape only (presence, code format); business rules such as
// amount positivity and currency support are enforced in the service layer.
type CreateTransactionRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currency" binding:"required,currencycode"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.TransactionID,
		CustomerName: txn.CustomerName,
		Amount:       txn.Amount,
		CurrencyCode: txn.CurrencyCode,
		CreatedAt:    txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
