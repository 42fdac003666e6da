package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/salespulse/sales_pulse_app/internal/apperrors"
	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	portsrepo "github.com/salespulse/sales_pulse_app/internal/core/ports/repositories"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionService provides business logic for recording sales and
// computing dashboard analytics. It holds no per-call state; the only shared
// mutable state it touches is the exchange-rate table behind the converter.
type TransactionService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	converter   portssvc.CurrencyConverterSvc
	broadcaster portssvc.TransactionBroadcaster
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	converter portssvc.CurrencyConverterSvc,
	broadcaster portssvc.TransactionBroadcaster,
) *TransactionService {
	return &TransactionService{
		txnRepo:     txnRepo,
		converter:   converter,
		broadcaster: broadcaster,
	}
}

// CreateTransaction validates and persists a new transaction, then pushes the
// record and the refreshed analytics to all subscribers. Validation failures
// are reported before any side effect; failures after the write propagate
// unchanged with no rollback of the persisted row.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}

	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if !s.converter.IsSupported(currencyCode) {
		return nil, fmt.Errorf("%w: currency must be one of: %s",
			apperrors.ErrValidation, strings.Join(s.converter.SupportedCurrencies(), ", "))
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerName:  customerName,
		Amount:        req.Amount,
		CurrencyCode:  currencyCode,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction in service: %w", err)
	}

	// Best-effort notification: the transaction is considered created once
	// persisted, independent of whether any subscriber receives it.
	s.broadcaster.BroadcastNewTransaction(txn)

	analytics, err := s.GetAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute analytics after save: %w", err)
	}
	s.broadcaster.BroadcastAnalyticsUpdate(*analytics)

	return &txn, nil
}

// ListTransactions retrieves all transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	// Return empty slice if no transactions found, not nil
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GetAnalytics recomputes the dashboard summary. Revenue is accumulated from
// the store's per-currency groups, each converted to the base currency; the
// total and unique-customer counts come from independent aggregation calls so
// they stay correct even if a currency group is empty.
func (s *TransactionService) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	stats, err := s.txnRepo.GetCurrencyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency stats in service: %w", err)
	}

	totalTransactions, err := s.txnRepo.CountTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions in service: %w", err)
	}

	uniqueCustomers, err := s.txnRepo.CountDistinctCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count distinct customers in service: %w", err)
	}

	baseCurrency := s.converter.BaseCurrency()
	totalRevenue := decimal.Zero
	for _, stat := range stats {
		converted, err := s.converter.ConvertToBaseCurrency(stat.TotalAmount, stat.CurrencyCode, baseCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s group to base currency: %w", stat.CurrencyCode, err)
		}
		totalRevenue = totalRevenue.Add(converted)
	}

	averageTransactionValue := decimal.Zero
	if totalTransactions > 0 {
		averageTransactionValue = totalRevenue.Div(decimal.NewFromInt(totalTransactions))
	}

	return &domain.Analytics{
		TotalRevenue:            totalRevenue,
		TotalTransactions:       totalTransactions,
		UniqueCustomers:         uniqueCustomers,
		AverageTransactionValue: averageTransactionValue,
		BaseCurrency:            baseCurrency,
	}, nil
}

// Ensure the implementation satisfies the port at compile time
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
