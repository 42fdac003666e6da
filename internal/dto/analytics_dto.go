package dto

import (
	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsResponse defines the aggregated dashboard summary returned by the
// analytics endpoint and pushed over the broadcast channel.
type AnalyticsResponse struct {
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	TotalTransactions       int64           `json:"totalTransactions"`
	UniqueCustomers         int64           `json:"uniqueCustomers"`
	AverageTransactionValue decimal.Decimal `json:"averageTransactionValue"`
	BaseCurrency            string          `json:"baseCurrency"`
}

// ToAnalyticsResponse converts a domain.Analytics to AnalyticsResponse DTO
func ToAnalyticsResponse(analytics *domain.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		TotalRevenue:            analytics.TotalRevenue,
		TotalTransactions:       analytics.TotalTransactions,
		UniqueCustomers:         analytics.UniqueCustomers,
		AverageTransactionValue: analytics.AverageTransactionValue,
		BaseCurrency:            analytics.BaseCurrency,
	}
}
