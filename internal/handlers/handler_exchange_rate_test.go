package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/core/services"
	"github.com/salespulse/sales_pulse_app/internal/dto"
	"github.com/salespulse/sales_pulse_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
// The in-memory rate table is deterministic, so these tests run against the
// real converter instead of a mock.
type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	converter portssvc.CurrencyConverterSvc
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.converter = services.NewExchangeRateService()

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExchangeRateRoutes(v1, suite.converter)
}

// --- Test Cases ---

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_Success() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates/EUR/USD", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ExchangeRateResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("EUR", responseBody.FromCurrencyCode)
	suite.Equal("USD", responseBody.ToCurrencyCode)
	suite.True(responseBody.Rate.Equal(decimal.RequireFromString("0.85")))
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_LowercaseCodes() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates/eur/usd", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_UnsupportedCurrency() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates/EUR/XXX", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var responseBody map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Contains(responseBody["error"], "XXX")
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_BadCodeLength() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates/EURO/US", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestUpdateExchangeRates_Success() {
	reqBody := dto.UpdateExchangeRatesRequest{
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.90"),
			"MXN": decimal.RequireFromString("17.1"),
		},
	}

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/exchange-rates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.SupportedCurrenciesResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("USD", responseBody.BaseCurrency)
	suite.Contains(responseBody.Currencies, "MXN")

	// The merge takes effect immediately for lookups.
	rate, err := suite.converter.GetExchangeRate("EUR", "USD")
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.90")))
}

func (suite *ExchangeRateHandlerTestSuite) TestUpdateExchangeRates_RejectsNonPositiveRate() {
	body := []byte(`{"rates":{"EUR":0}}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/exchange-rates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	// Rejected update must not touch the table.
	rate, err := suite.converter.GetExchangeRate("EUR", "USD")
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.85")))
}

func (suite *ExchangeRateHandlerTestSuite) TestUpdateExchangeRates_MissingRates() {
	body := []byte(`{}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/exchange-rates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestListCurrencies_Success() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.SupportedCurrenciesResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("USD", responseBody.BaseCurrency)
	suite.Len(responseBody.Currencies, 10)
	suite.Contains(responseBody.Currencies, "USD")
	suite.Contains(responseBody.Currencies, "JPY")
}

// --- Run Test Suite ---
func TestExchangeRateHandler(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
