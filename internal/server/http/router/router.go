package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/metrics"
	"github.com/polkiloo/outsourcing/internal/server/http/handlers"
	"github.com/polkiloo/outsourcing/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OutsourcingFacade, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID(logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	supplierHandler := handlers.NewSupplierHandler(facade)
	searchHandler := handlers.NewSearchHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	statisticsHandler := handlers.NewStatisticsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/ping", healthHandler.Ping)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")

	suppliers := api.Group("/suppliers")
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.GET("/suitable", supplierHandler.Suitable)
	suppliers.PATCH("/:id", supplierHandler.Update)

	api.GET("/search", searchHandler.Search)
	api.POST("/products", orderHandler.CreateProduct)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", orderHandler.Update)
	orders.POST("/:id/status", orderHandler.UpdateStatus)

	api.GET("/statistics", statisticsHandler.Get)

	return engine
}
