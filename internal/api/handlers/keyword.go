package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/ads"
	"storeops/internal/logger"
)

type KeywordSuggester interface {
	SuggestKeywords(seeds []string) ([]ads.KeywordIdea, error)
}

type KeywordHandler struct {
	ads    KeywordSuggester
	logger *logger.Logger
}

func NewKeywordHandler(suggester KeywordSuggester, logger *logger.Logger) *KeywordHandler {
	return &KeywordHandler{
		ads:    suggester,
		logger: logger,
	}
}

// Suggest generates keyword ideas from product attributes. At least one of
// the seed fields must be present.
func (h *KeywordHandler) Suggest(c *gin.Context) {
	var req struct {
		ProductTitle       string `json:"product_title"`
		ProductDescription string `json:"product_description"`
		Tags               string `json:"tags"`
		Metadata           string `json:"meta_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ideas, err := h.ads.SuggestKeywords([]string{
		req.ProductTitle, req.ProductDescription, req.Tags, req.Metadata,
	})
	if err != nil {
		if errors.Is(err, ads.ErrNoSeeds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ideas})
}
