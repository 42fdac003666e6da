package dto

import "github.com/shopspring/decimal"

// UpdateExchangeRatesRequest defines a partial currency→rate map to merge
// into the live exchange-rate table. Existing entries are overwritten and new
// ones added; omitted currencies keep their current rate.
type UpdateExchangeRatesRequest struct {
	Rates map[string]decimal.Decimal `json:"rates" binding:"required"`
}

// ExchangeRateResponse defines the relative rate between two currencies.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
}

// SupportedCurrenciesResponse lists the codes currently in the exchange-rate
// table, alongside the base currency all analytics are reported in.
type SupportedCurrenciesResponse struct {
	BaseCurrency string   `json:"baseCurrency"`
	Currencies   []string `json:"currencies"`
}
