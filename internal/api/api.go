package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/api/handlers"
	"github.com/andresuchdata/autoorder/backend/internal/api/middleware"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	OrderService    *service.OrderService
	CatalogService  *service.CatalogService
	PlanningService *service.PlanningService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Export-Key", "X-Export-Uploaded"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	safetyHandler := handlers.NewSafetyStockHandler()
	safetyGroup := apiGroup.Group("/safety-stock")
	{
		safetyGroup.POST("/days", safetyHandler.Days)
		safetyGroup.POST("/end-date", safetyHandler.EndDate)
	}

	if services == nil {
		return router
	}

	if services.OrderService != nil {
		orderHandler := handlers.NewOrderHandler(services.OrderService)
		orderGroup := apiGroup.Group("/orders")
		{
			orderGroup.POST("/calculate", orderHandler.Calculate)
			orderGroup.POST("/shortage", orderHandler.Shortage)

			orderGroup.POST("", orderHandler.CreateOrder)
			orderGroup.GET("", orderHandler.ListOrders)
			orderGroup.GET("/:id", orderHandler.GetOrder)
			orderGroup.DELETE("/:id", orderHandler.DeleteOrder)
			orderGroup.PATCH("/:id/status", orderHandler.UpdateStatus)
			orderGroup.POST("/:id/replay", orderHandler.ReplayOrder)
			orderGroup.GET("/:id/export", orderHandler.ExportOrder)
		}
	}

	if services.CatalogService != nil {
		catalogHandler := handlers.NewCatalogHandler(services.CatalogService)
		supplierGroup := apiGroup.Group("/suppliers")
		{
			supplierGroup.GET("", catalogHandler.ListSuppliers)
			supplierGroup.GET("/:id/products", catalogHandler.ListProducts)
			supplierGroup.PUT("/:id/products", catalogHandler.UpsertProduct)
		}
	}

	if services.PlanningService != nil {
		planningHandler := handlers.NewPlanningHandler(services.PlanningService)
		planningGroup := apiGroup.Group("/planning")
		{
			planningGroup.GET("", planningHandler.PlanAll)
			planningGroup.GET("/:supplier_id", planningHandler.PlanSupplier)
			planningGroup.PUT("/:supplier_id/entries", planningHandler.SaveEntries)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
