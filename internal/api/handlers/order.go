package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/logger"
	"storeops/internal/store"
)

type OrderStore interface {
	OrderSummaries() ([]store.OrderSummary, error)
	UnfulfilledOrders() ([]store.UnfulfilledOrder, error)
	FulfillPendingOrders() ([]store.FulfilledOrder, error)
	CustomersWithReturns() ([]store.ReturnRecord, error)
}

type OrderHandler struct {
	store  OrderStore
	logger *logger.Logger
}

func NewOrderHandler(store OrderStore, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		store:  store,
		logger: logger,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.store.OrderSummaries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *OrderHandler) Unfulfilled(c *gin.Context) {
	orders, err := h.store.UnfulfilledOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *OrderHandler) Fulfill(c *gin.Context) {
	fulfilled, err := h.store.FulfillPendingOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"fulfilled_orders": fulfilled}})
}

func (h *OrderHandler) Returns(c *gin.Context) {
	returns, err := h.store.CustomersWithReturns()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": returns})
}
