package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/handler"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	assistantHandler *handler.AssistantHandler,
	purchaseHandler *handler.PurchaseHandler,
) {
	// GET /
	router.GET("/", healthHandler.Root)

	// POST /create-user
	router.POST("/create-user", userHandler.CreateUser)

	// GET /get-user/:userId
	router.GET("/get-user/:userId", userHandler.GetProfile)

	// POST /gold-assistant
	router.POST("/gold-assistant", assistantHandler.Ask)

	// POST /purchase-gold
	router.POST("/purchase-gold", purchaseHandler.PurchaseGold)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
