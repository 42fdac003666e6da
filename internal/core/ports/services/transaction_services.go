package services

import (
	"context"

	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	"github.com/salespulse/sales_pulse_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetAnalytics recomputes the dashboard summary from the store's
	// aggregation queries, converting every currency group to the base
	// currency.
	GetAnalytics(ctx context.Context) (*domain.Analytics, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction, then
	// broadcasts the record and the refreshed analytics to all subscribers.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
