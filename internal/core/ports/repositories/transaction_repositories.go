package repositories

import (
	"context"

	"github.com/salespulse/sales_pulse_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetCurrencyStats retrieves the per-currency sum and count of all
	// transactions, grouped store-side so cost scales with distinct
	// currencies rather than transaction volume.
	GetCurrencyStats(ctx context.Context) ([]domain.CurrencyStat, error)

	// CountTransactions retrieves the total number of transactions.
	CountTransactions(ctx context.Context) (int64, error)

	// CountDistinctCustomers retrieves the number of unique customer names.
	CountDistinctCustomers(ctx context.Context) (int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
