package handlers

import (
	"net/http"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/gin-gonic/gin"

	"storeops/internal/logger"
)

type ThemeStore interface {
	ListThemes() ([]goshopify.Theme, error)
	ActiveTheme() (*goshopify.Theme, error)
	ListAssets(themeID int64) ([]goshopify.Asset, error)
	GetAsset(themeID int64, key string) (*goshopify.Asset, error)
	UpdateAsset(themeID int64, key, value string) (*goshopify.Asset, error)
	DeleteAsset(themeID int64, key string) error
}

type ThemeHandler struct {
	store  ThemeStore
	logger *logger.Logger
}

func NewThemeHandler(store ThemeStore, logger *logger.Logger) *ThemeHandler {
	return &ThemeHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.store.ListThemes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": themes})
}

func (h *ThemeHandler) Active(c *gin.Context) {
	theme, err := h.store.ActiveTheme()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": theme})
}

func (h *ThemeHandler) ListAssets(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	assets, err := h.store.ListAssets(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assets})
}

// Asset keys contain slashes ("templates/index.liquid"), so the key travels
// as a query parameter rather than a path segment.
func (h *ThemeHandler) GetAsset(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'key' is required"})
		return
	}

	asset, err := h.store.GetAsset(id, key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (h *ThemeHandler) UpdateAsset(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.store.UpdateAsset(id, req.Key, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (h *ThemeHandler) DeleteAsset(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'key' is required"})
		return
	}

	if err := h.store.DeleteAsset(id, key); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
