package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/salespulse/sales_pulse_app/internal/apperrors"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// baseCurrencyCode is the currency all aggregate analytics are reported in.
const baseCurrencyCode = "USD"

// defaultExchangeRates seeds the table at startup. Each rate is relative to
// the base currency (base = amount / rate), so the base currency itself is 1.
// The table resets to these values on process restart; runtime updates are
// applied through UpdateExchangeRates.
func defaultExchangeRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.85"),
		"GBP": decimal.RequireFromString("0.73"),
		"CAD": decimal.RequireFromString("1.25"),
		"AUD": decimal.RequireFromString("1.35"),
		"JPY": decimal.RequireFromString("110.0"),
		"CHF": decimal.RequireFromString("0.92"),
		"CNY": decimal.RequireFromString("6.45"),
		"INR": decimal.RequireFromString("74.5"),
		"BRL": decimal.RequireFromString("5.2"),
	}
}

// ExchangeRateService owns the live exchange-rate table and provides all
// currency conversion for the application. The table doubles as the
// definition of which currency codes are valid, so there is exactly one
// source of truth for currency support.
type ExchangeRateService struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

// NewExchangeRateService creates an ExchangeRateService seeded with the
// default rate table.
func NewExchangeRateService() *ExchangeRateService {
	return &ExchangeRateService{rates: defaultExchangeRates()}
}

// GetExchangeRate returns the relative rate between two currencies, or 1 when
// the codes are equal. Fails when either code is missing from the table.
func (s *ExchangeRateService) GetExchangeRate(fromCode, toCode string) (decimal.Decimal, error) {
	if fromCode == toCode {
		return decimal.NewFromInt(1), nil
	}

	s.mu.RLock()
	fromRate, fromOK := s.rates[fromCode]
	toRate, toOK := s.rates[toCode]
	s.mu.RUnlock()

	if !fromOK || !toOK {
		return decimal.Decimal{}, fmt.Errorf("%w: %s or %s", apperrors.ErrUnsupportedCurrency, fromCode, toCode)
	}

	return fromRate.Div(toRate), nil
}

// ConvertToBaseCurrency converts amount from one currency to another using
// the canonical two-hop path through the base currency; no direct cross-rates
// are stored. Same-currency conversion returns the amount unchanged.
func (s *ExchangeRateService) ConvertToBaseCurrency(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if fromCode == toCode {
		return amount, nil
	}

	s.mu.RLock()
	fromRate, fromOK := s.rates[fromCode]
	toRate, toOK := s.rates[toCode]
	s.mu.RUnlock()

	if !fromOK || !toOK {
		return decimal.Decimal{}, fmt.Errorf("%w: %s or %s", apperrors.ErrUnsupportedCurrency, fromCode, toCode)
	}

	baseAmount := amount.Div(fromRate)
	return baseAmount.Mul(toRate), nil
}

// UpdateExchangeRates merges the given pairs into the live table, overwriting
// existing entries and adding new ones. The update takes effect for
// subsequent conversions only; nothing already computed is revisited.
func (s *ExchangeRateService) UpdateExchangeRates(rates map[string]decimal.Decimal) error {
	for code, rate := range rates {
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: exchange rate for %s must be positive", apperrors.ErrValidation, code)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for code, rate := range rates {
		s.rates[code] = rate
	}
	return nil
}

// SupportedCurrencies returns all currency codes currently in the table,
// sorted alphabetically.
func (s *ExchangeRateService) SupportedCurrencies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether the given code has a rate in the table.
func (s *ExchangeRateService) IsSupported(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rates[code]
	return ok
}

// BaseCurrency returns the code all analytics are reported in.
func (s *ExchangeRateService) BaseCurrency() string {
	return baseCurrencyCode
}

// Ensure the implementation satisfies the port at compile time
var _ portssvc.CurrencyConverterSvc = (*ExchangeRateService)(nil)
