package services_test

import (
	"testing"

	"github.com/salespulse/sales_pulse_app/internal/apperrors"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	service portssvc.CurrencyConverterSvc
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.service = services.NewExchangeRateService()
}

var defaultCurrencyCodes = []string{"AUD", "BRL", "CAD", "CHF", "CNY", "EUR", "GBP", "INR", "JPY", "USD"}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestBaseCurrency() {
	suite.Equal("USD", suite.service.BaseCurrency())
}

func (suite *ExchangeRateServiceTestSuite) TestSupportedCurrencies_Defaults() {
	suite.Equal(defaultCurrencyCodes, suite.service.SupportedCurrencies())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_SameCurrency() {
	rate, err := suite.service.GetExchangeRate("JPY", "JPY")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Defaults() {
	rate, err := suite.service.GetExchangeRate("EUR", "USD")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.85")), "expected 0.85, got %s", rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_ReciprocalPairs() {
	for _, from := range defaultCurrencyCodes {
		for _, to := range defaultCurrencyCodes {
			forward, err := suite.service.GetExchangeRate(from, to)
			suite.Require().NoError(err)
			backward, err := suite.service.GetExchangeRate(to, from)
			suite.Require().NoError(err)

			product, _ := forward.Mul(backward).Float64()
			suite.InDelta(1.0, product, 1e-9, "rate(%s,%s)*rate(%s,%s)", from, to, to, from)
		}
	}
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_UnsupportedCurrency() {
	_, err := suite.service.GetExchangeRate("EUR", "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Contains(err.Error(), "EUR")
	suite.Contains(err.Error(), "XXX")
}

func (suite *ExchangeRateServiceTestSuite) TestConvertToBaseCurrency_SameCurrencyIsIdentity() {
	amount := decimal.RequireFromString("123.456789")

	converted, err := suite.service.ConvertToBaseCurrency(amount, "BRL", "BRL")

	suite.Require().NoError(err)
	suite.True(converted.Equal(amount), "identity conversion must not drift")
}

func (suite *ExchangeRateServiceTestSuite) TestConvertToBaseCurrency_TwoHop() {
	// 100 EUR -> USD: 100 / 0.85
	converted, err := suite.service.ConvertToBaseCurrency(decimal.NewFromInt(100), "EUR", "USD")

	suite.Require().NoError(err)
	result, _ := converted.Float64()
	suite.InDelta(100.0/0.85, result, 1e-9)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertToBaseCurrency_RoundTrip() {
	amount := decimal.RequireFromString("250.75")
	for _, from := range defaultCurrencyCodes {
		for _, to := range defaultCurrencyCodes {
			there, err := suite.service.ConvertToBaseCurrency(amount, from, to)
			suite.Require().NoError(err)
			back, err := suite.service.ConvertToBaseCurrency(there, to, from)
			suite.Require().NoError(err)

			result, _ := back.Float64()
			suite.InDelta(250.75, result, 1e-6, "round trip %s->%s->%s", from, to, from)
		}
	}
}

func (suite *ExchangeRateServiceTestSuite) TestConvertToBaseCurrency_UnsupportedCurrency() {
	_, err := suite.service.ConvertToBaseCurrency(decimal.NewFromInt(10), "ZZZ", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Contains(err.Error(), "ZZZ")
	suite.Contains(err.Error(), "USD")
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRates_OverwritesExisting() {
	err := suite.service.UpdateExchangeRates(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.90"),
	})
	suite.Require().NoError(err)

	rate, err := suite.service.GetExchangeRate("EUR", "USD")
	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.90")), "expected exactly 0.90, got %s", rate)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRates_AddsNewCurrency() {
	suite.False(suite.service.IsSupported("MXN"))

	err := suite.service.UpdateExchangeRates(map[string]decimal.Decimal{
		"MXN": decimal.RequireFromString("17.1"),
	})
	suite.Require().NoError(err)

	suite.True(suite.service.IsSupported("MXN"))
	suite.Contains(suite.service.SupportedCurrencies(), "MXN")

	converted, err := suite.service.ConvertToBaseCurrency(decimal.RequireFromString("17.1"), "MXN", "USD")
	suite.Require().NoError(err)
	result, _ := converted.Float64()
	suite.InDelta(1.0, result, 1e-9)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRates_RejectsNonPositiveRate() {
	err := suite.service.UpdateExchangeRates(map[string]decimal.Decimal{
		"EUR": decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// The table must be left untouched.
	rate, err := suite.service.GetExchangeRate("EUR", "USD")
	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.85")))
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
