package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	portsrepo "github.com/salespulse/sales_pulse_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// SaveTransaction inserts a new transaction. Rows are immutable, so there is
// no upsert path.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, customer_name, amount, currency_code, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.CustomerName,
		txn.Amount,
		txn.CurrencyCode,
		txn.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// ListTransactions retrieves all transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, customer_name, amount, currency_code, created_at
		FROM transactions
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.CustomerName,
			&txn.Amount,
			&txn.CurrencyCode,
			&txn.CreatedAt,
		)
		return txn, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return txns, nil
}

// GetCurrencyStats retrieves the per-currency sum and count of all
// transactions. Grouping happens store-side so the result size scales with
// distinct currencies, not transaction volume.
func (r *PgxTransactionRepository) GetCurrencyStats(ctx context.Context) ([]domain.CurrencyStat, error) {
	query := `
		SELECT currency_code, SUM(amount) AS total_amount, COUNT(*) AS transaction_count
		FROM transactions
		GROUP BY currency_code
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.CurrencyStat
	for rows.Next() {
		var stat domain.CurrencyStat
		if err := rows.Scan(&stat.CurrencyCode, &stat.TotalAmount, &stat.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan currency stat row: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate currency stat rows: %w", err)
	}

	if len(stats) == 0 {
		// Return empty slice instead of nil
		return []domain.CurrencyStat{}, nil
	}

	return stats, nil
}

// CountTransactions retrieves the total number of transactions.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// CountDistinctCustomers retrieves the number of unique customer names.
func (r *PgxTransactionRepository) CountDistinctCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT customer_name) FROM transactions;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct customers: %w", err)
	}
	return count, nil
}
