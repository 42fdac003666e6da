package domain

import "github.com/shopspring/decimal"

// CurrencyStat is a per-currency aggregation produced by the store's grouping
// query: the sum and count of all transactions recorded in that currency,
// before any cross-currency conversion.
type CurrencyStat struct {
	CurrencyCode     string          `json:"currencyCode"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
}

// Analytics is the derived dashboard summary. It is recomputed on demand and
// never persisted; TotalRevenue and AverageTransactionValue are expressed in
// the base currency.
type Analytics struct {
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	TotalTransactions       int64           `json:"totalTransactions"`
	UniqueCustomers         int64           `json:"uniqueCustomers"`
	AverageTransactionValue decimal.Decimal `json:"averageTransactionValue"`
	BaseCurrency            string          `json:"baseCurrency"`
}
