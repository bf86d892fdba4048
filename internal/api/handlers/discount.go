package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/logger"
	"storeops/internal/store"
)

type DiscountStore interface {
	CreateProductDiscounts(identifiers []string, value float64) ([]store.CreatedDiscount, error)
	PruneExpiredDiscounts() (*store.DiscountReview, error)
}

type DiscountHandler struct {
	store  DiscountStore
	logger *logger.Logger
}

func NewDiscountHandler(store DiscountStore, logger *logger.Logger) *DiscountHandler {
	return &DiscountHandler{
		store:  store,
		logger: logger,
	}
}

func (h *DiscountHandler) Create(c *gin.Context) {
	var req struct {
		ProductIdentifiers []string `json:"product_identifiers" binding:"required"`
		DiscountValue      float64  `json:"discount_value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.CreateProductDiscounts(req.ProductIdentifiers, req.DiscountValue)
	if err != nil {
		// Partial results matter here: discounts created before the failure
		// are live on the store and the caller needs to know about them.
		if len(created) > 0 {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "data": created})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *DiscountHandler) Prune(c *gin.Context) {
	review, err := h.store.PruneExpiredDiscounts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": review})
}
