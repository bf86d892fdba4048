package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/analytics"
	"storeops/internal/logger"
)

type AnalyticsHandler struct {
	service *analytics.Service
	logger  *logger.Logger
}

func NewAnalyticsHandler(service *analytics.Service, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AnalyticsHandler) Sales(c *gin.Context) {
	report, err := h.service.AnalyzeSales()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (h *AnalyticsHandler) CustomerBehavior(c *gin.Context) {
	report, err := h.service.AnalyzeCustomerBehavior()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (h *AnalyticsHandler) LowStock(c *gin.Context) {
	report, err := h.service.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (h *AnalyticsHandler) StockLevels(c *gin.Context) {
	levels, err := h.service.StockLevels()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"stock_levels": levels}})
}

func (h *AnalyticsHandler) Store(c *gin.Context) {
	report, err := h.service.AnalyzeStore()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}
