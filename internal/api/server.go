package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storeops/internal/ads"
	"storeops/internal/analytics"
	"storeops/internal/api/handlers"
	"storeops/internal/api/middleware"
	"storeops/internal/config"
	"storeops/internal/events"
	"storeops/internal/logger"
	"storeops/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

// New wires the command surface. The store client, analytics service and ads
// client are each optional: a nil value means that integration's credentials
// were absent, its routes are not mounted, and startup continues.
func New(cfg *config.Config, logger *logger.Logger, st *store.Client, an *analytics.Service, adsClient *ads.Client, publisher *events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Audit(publisher))

	// Routes
	v1 := router.Group("/api/v1")

	if st != nil {
		productHandler := handlers.NewProductHandler(st, logger)
		collectionHandler := handlers.NewCollectionHandler(st, logger)
		themeHandler := handlers.NewThemeHandler(st, logger)
		orderHandler := handlers.NewOrderHandler(st, logger)
		discountHandler := handlers.NewDiscountHandler(st, logger)
		analyticsHandler := handlers.NewAnalyticsHandler(an, logger)

		// Products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/search", productHandler.Search)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		// Collections
		collections := v1.Group("/collections")
		{
			collections.GET("", collectionHandler.List)
			collections.POST("", collectionHandler.Create)
			collections.PUT("/:id", collectionHandler.Update)
			collections.DELETE("/:id", collectionHandler.Delete)
			collections.POST("/:id/products", collectionHandler.AddProduct)
		}

		// Themes and assets
		themes := v1.Group("/themes")
		{
			themes.GET("", themeHandler.List)
			themes.GET("/active", themeHandler.Active)
			themes.GET("/:id/assets", themeHandler.ListAssets)
			themes.GET("/:id/asset", themeHandler.GetAsset)
			themes.PUT("/:id/asset", themeHandler.UpdateAsset)
			themes.DELETE("/:id/asset", themeHandler.DeleteAsset)
		}

		// Orders
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/unfulfilled", orderHandler.Unfulfilled)
			orders.GET("/returns", orderHandler.Returns)
			orders.POST("/fulfill", orderHandler.Fulfill)
		}

		// Discounts
		discounts := v1.Group("/discounts")
		{
			discounts.POST("", discountHandler.Create)
			discounts.POST("/prune", discountHandler.Prune)
		}

		// Analytics
		analyticsGroup := v1.Group("/analytics")
		{
			analyticsGroup.GET("/sales", analyticsHandler.Sales)
			analyticsGroup.GET("/customers", analyticsHandler.CustomerBehavior)
			analyticsGroup.GET("/stock", analyticsHandler.LowStock)
			analyticsGroup.GET("/stock/levels", analyticsHandler.StockLevels)
			analyticsGroup.GET("/store", analyticsHandler.Store)
		}
	} else {
		logger.Info("Shopify credentials not set, store commands disabled")
	}

	if adsClient != nil {
		keywordHandler := handlers.NewKeywordHandler(adsClient, logger)
		v1.POST("/keywords/suggest", keywordHandler.Suggest)
	} else {
		logger.Info("Google Ads credentials not set, keyword suggestions disabled")
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
