package services

import "github.com/shopspring/decimal"

// CurrencyConverterSvc defines conversion and rate-lookup operations backed by
// the live exchange-rate table. The table is the single source of truth for
// which currency codes are valid: a code is supported exactly when it has a
// rate, so validation and conversion can never diverge.
type CurrencyConverterSvc interface {
	// ConvertToBaseCurrency converts amount from one currency to another via
	// the base currency. Returns amount unchanged when the codes are equal.
	ConvertToBaseCurrency(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)

	// GetExchangeRate returns the relative rate between two currencies,
	// or 1 when the codes are equal.
	GetExchangeRate(fromCode, toCode string) (decimal.Decimal, error)

	// UpdateExchangeRates merges the given currency→rate pairs into the live
	// table, overwriting existing entries and adding new ones. Effective
	// immediately for subsequent conversions.
	UpdateExchangeRates(rates map[string]decimal.Decimal) error

	// SupportedCurrencies returns all currency codes currently in the table,
	// sorted alphabetically.
	SupportedCurrencies() []string

	// IsSupported reports whether the given code has a rate in the table.
	IsSupported(code string) bool

	// BaseCurrency returns the code all analytics are reported in.
	BaseCurrency() string
}
