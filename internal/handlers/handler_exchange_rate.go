package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/sales_pulse_app/internal/apperrors"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/dto"
	"github.com/salespulse/sales_pulse_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to the exchange-rate table.
type exchangeRateHandler struct {
	converter portssvc.CurrencyConverterSvc
}

// RegisterExchangeRateRoutes registers routes related to exchange rates and
// the supported currency set.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, converter portssvc.CurrencyConverterSvc) {
	h := &exchangeRateHandler{converter: converter}

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.PUT("", h.updateExchangeRates)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
	rg.GET("/currencies", h.listCurrencies)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the current relative rate between two supported currencies
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid or unsupported currency code"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := strings.ToUpper(c.Param("from"))
	toCode := strings.ToUpper(c.Param("to"))

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))
	logger.Info("Received request to get exchange rate")

	rate, err := h.converter.GetExchangeRate(fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("Unsupported currency in exchange rate lookup", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate retrieved successfully")
	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             rate,
	})
}

// updateExchangeRates godoc
// @Summary Update exchange rates
// @Description Merges the given currency→rate pairs into the live table, overwriting existing entries and adding new ones; effective immediately
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rates body dto.UpdateExchangeRatesRequest true "Partial currency to rate map"
// @Success 200 {object} dto.SupportedCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /exchange-rates [put]
func (h *exchangeRateHandler) updateExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExchangeRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update exchange rates", slog.Int("count", len(req.Rates)))

	if err := h.converter.UpdateExchangeRates(req.Rates); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exchange rates"})
		}
		return
	}

	logger.Info("Exchange rates updated successfully")
	c.JSON(http.StatusOK, dto.SupportedCurrenciesResponse{
		BaseCurrency: h.converter.BaseCurrency(),
		Currencies:   h.converter.SupportedCurrencies(),
	})
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currency codes currently in the exchange-rate table and the base currency
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.SupportedCurrenciesResponse
// @Router /currencies [get]
func (h *exchangeRateHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list supported currencies")

	c.JSON(http.StatusOK, dto.SupportedCurrenciesResponse{
		BaseCurrency: h.converter.BaseCurrency(),
		Currencies:   h.converter.SupportedCurrencies(),
	})
}
