package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/dto"
	"github.com/salespulse/sales_pulse_app/internal/middleware"
)

// analyticsHandler handles HTTP requests for the aggregated dashboard summary.
type analyticsHandler struct {
	transactionService portssvc.TransactionReaderSvc
}

// RegisterAnalyticsRoutes registers routes related to analytics.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionReaderSvc) {
	h := &analyticsHandler{transactionService: transactionService}

	rg.GET("/analytics", h.getAnalytics)
}

// getAnalytics godoc
// @Summary Get aggregated sales analytics
// @Description Recomputes total revenue (in the base currency), transaction count, unique customers and average transaction value
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Router /analytics [get]
func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to get analytics")

	analytics, err := h.transactionService.GetAnalytics(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute analytics in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	logger.Info("Analytics computed successfully", slog.Int64("total_transactions", analytics.TotalTransactions))
	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(analytics))
}
